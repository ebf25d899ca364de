//go:build !cgo

package hal

const windowSupported = false

func RunWindow(cfg WindowConfig, _ func(Backend) func() error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return ErrNoWindow
}
