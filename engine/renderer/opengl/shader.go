package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inTexcoord;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexcoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	fragPosition = vec3(model * vec4(inPosition, 1.0));
	fragNormal = mat3(transpose(inverse(model))) * inNormal;
	fragTexcoord = inTexcoord;
	gl_Position = projection * view * vec4(fragPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
#define TOTAL_LIGHTS 4

struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct LightSource {
	vec3 position;
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
};

in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexcoord;

out vec4 outFragColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

vec3 shade(LightSource light, vec3 baseColor, vec3 normal, vec3 viewDir) {
	vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;

	vec3 lightDir = normalize(light.position - fragPosition);
	float diff = max(dot(normal, lightDir), 0.0) * light.focalStrength;
	vec3 diffuse = diff * light.diffuseColor * material.diffuseColor;

	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	vec3 specular = light.specularIntensity * spec * light.specularColor * material.specularColor;

	return (ambient + diffuse + specular) * baseColor;
}

void main() {
	vec4 base = bUseTexture
		? texture(objectTexture, fragTexcoord * UVscale)
		: objectColor;

	if (!bUseLighting) {
		outFragColor = base;
		return;
	}

	vec3 normal = normalize(fragNormal);
	vec3 viewDir = normalize(viewPosition - fragPosition);
	vec3 color = vec3(0.0);
	for (int i = 0; i < TOTAL_LIGHTS; i++) {
		color += shade(lightSources[i], base.rgb, normal, viewDir);
	}
	outFragColor = vec4(color, base.a);
}
`

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		return 0, fmt.Errorf("failed to link program: %v", logText)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
