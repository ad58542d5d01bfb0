package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/render"
)

const envPrefix = "PGAVIEW"

// Config is the viewer configuration after defaults, the config file, the
// environment and flags have been layered.
type Config struct {
	FPS        int          `mapstructure:"fps"`
	Background []int        `mapstructure:"background"`
	Camera     CameraConfig `mapstructure:"camera"`
	Spring     SpringConfig `mapstructure:"spring"`
	Wire       WireConfig   `mapstructure:"wire"`
}

// CameraConfig places the camera. FOV is in degrees.
type CameraConfig struct {
	Eye  []float32 `mapstructure:"eye"`
	At   []float32 `mapstructure:"at"`
	Up   []float32 `mapstructure:"up"`
	FOV  float32   `mapstructure:"fov"`
	Near float32   `mapstructure:"near"`
	Far  float32   `mapstructure:"far"`
}

// SpringConfig tunes the keyframe tween and the orbit decay.
type SpringConfig struct {
	Frequency float64 `mapstructure:"frequency"`
	Damping   float64 `mapstructure:"damping"`
}

// WireConfig is the mesh line style.
type WireConfig struct {
	Color []int `mapstructure:"color"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fps", 60)
	v.SetDefault("background", []int{30, 30, 40})
	v.SetDefault("camera.eye", []float32{0, 1.5, 5})
	v.SetDefault("camera.at", []float32{0, 0, 0})
	v.SetDefault("camera.up", []float32{0, 1, 0})
	v.SetDefault("camera.fov", 60)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 100)
	v.SetDefault("spring.frequency", 4.0)
	v.SetDefault("spring.damping", 1.0)
	v.SetDefault("wire.color", []int{0, 255, 128})
}

// loadConfig reads the layered configuration into v. An explicit cfgFile must
// exist; the default $HOME/.pgaview/config.yaml is optional.
func (a *app) loadConfig(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".pgaview"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if a.verbose {
			a.log.Printf("config file not found, using defaults")
		}
	} else if a.verbose {
		a.log.Printf("using config file %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and that the camera pose is well defined.
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps must be in [1, 240], got %d", c.FPS)
	}
	if _, err := render.ColorFromRGB(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := render.ColorFromRGB(c.Wire.Color); err != nil {
		return fmt.Errorf("wire.color: %w", err)
	}
	for key, v := range map[string][]float32{
		"camera.eye": c.Camera.Eye,
		"camera.at":  c.Camera.At,
		"camera.up":  c.Camera.Up,
	} {
		if len(v) != 3 {
			return fmt.Errorf("%s needs 3 components, got %d", key, len(v))
		}
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180) degrees, got %g", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes need 0 < near < far, got %g and %g", c.Camera.Near, c.Camera.Far)
	}
	if c.Spring.Frequency <= 0 || c.Spring.Damping < 0 {
		return fmt.Errorf("spring needs frequency > 0 and damping >= 0, got %g and %g", c.Spring.Frequency, c.Spring.Damping)
	}
	if _, err := motion.LookAt(c.Camera.EyeVec(), c.Camera.AtVec(), c.Camera.UpVec()); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	return nil
}

// EyeVec returns Eye as a vector. Validate has checked the length.
func (c CameraConfig) EyeVec() math3d.Vec3 { return vec3(c.Eye) }

// AtVec returns At as a vector.
func (c CameraConfig) AtVec() math3d.Vec3 { return vec3(c.At) }

// UpVec returns Up as a vector.
func (c CameraConfig) UpVec() math3d.Vec3 { return vec3(c.Up) }

func vec3(v []float32) math3d.Vec3 {
	if len(v) != 3 {
		return math3d.Vec3{}
	}
	return math3d.V3(v[0], v[1], v[2])
}
