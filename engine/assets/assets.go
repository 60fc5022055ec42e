package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaghettifunk/tableau/engine/core"
)

// AssetManager resolves asset names to paths under a single root directory
// and decodes image files. All assets are read once during scene setup;
// there is no watching or reloading.
type AssetManager struct {
	root string
}

func NewAssetManager() (*AssetManager, error) {
	return &AssetManager{}, nil
}

func (am *AssetManager) Initialize(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		err := fmt.Errorf("asset root '%s' is not accessible: %w", root, err)
		core.LogError(err.Error())
		return err
	}
	if !info.IsDir() {
		err := fmt.Errorf("asset root '%s' is not a directory", root)
		core.LogError(err.Error())
		return err
	}
	am.root = root
	core.LogDebug("asset root set to '%s'", root)
	return nil
}

func (am *AssetManager) Shutdown() error {
	return nil
}

// TexturePath resolves a texture file name against the asset root.
func (am *AssetManager) TexturePath(name string) string {
	return filepath.Join(am.root, "textures", name)
}

// LoadImage decodes the image at the given path (relative names are resolved
// against the asset root) into raw pixels.
func (am *AssetManager) LoadImage(path string) (*ImageData, error) {
	if !filepath.IsAbs(path) && am.root != "" {
		path = filepath.Join(am.root, path)
	}
	return DecodeImage(path)
}
