package core

import (
	"sync"

	"github.com/spaghettifunk/tableau/engine/containers"
)

const AVG_COUNT = 30

type MetricsState struct {
	MStimes            *containers.RingQueue[float64]
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64
}

var onceMetrics sync.Once
var metricsState *MetricsState = nil

func MetricsInitialize() error {
	onceMetrics.Do(func() {
		metricsState = &MetricsState{
			MStimes: containers.NewRingQueue[float64](AVG_COUNT),
		}
	})
	return nil
}

// MetricsUpdate records one frame's elapsed time (in seconds) and refreshes
// the rolling frame-ms average and the FPS counter.
func MetricsUpdate(frameElapsedTime float64) {
	if metricsState == nil {
		return
	}
	frameMS := frameElapsedTime * 1000.0
	metricsState.MStimes.Enqueue(frameMS)
	if metricsState.MStimes.IsFull() {
		sum := 0.0
		metricsState.MStimes.Each(func(ms float64) { sum += ms })
		metricsState.MSavg = sum / float64(metricsState.MStimes.Len())
	}

	metricsState.Frames++
	metricsState.AccumulatedFrameMS += frameMS
	// Once per second, recompute FPS.
	if metricsState.AccumulatedFrameMS > 1000 {
		metricsState.FPS = float64(metricsState.Frames) / (metricsState.AccumulatedFrameMS / 1000.0)
		metricsState.Frames = 0
		metricsState.AccumulatedFrameMS = 0
	}
}

func MetricsFrameAvg() float64 {
	if metricsState == nil {
		return 0
	}
	return metricsState.MSavg
}

func MetricsFPS() float64 {
	if metricsState == nil {
		return 0
	}
	return metricsState.FPS
}
