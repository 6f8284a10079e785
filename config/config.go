package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config 结构体：对应 defaults.yaml 的内容
// 所有数值都是写死的常量，程序不读取任何外部配置文件
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Movement MovementConfig `yaml:"movement"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Assets   AssetsConfig   `yaml:"assets"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig 窗口尺寸与初始位置
type WindowConfig struct {
	Title            string `yaml:"title"`
	Width            int    `yaml:"width"`
	Height           int    `yaml:"height"`
	PixelsFromRight  int    `yaml:"pixels_from_right"`  // 初始 X = 屏幕宽 - 该值
	PixelsFromBottom int    `yaml:"pixels_from_bottom"` // 初始 Y = 屏幕高 - 该值
}

// MovementConfig 移动范围与速度
type MovementConfig struct {
	MinX        int `yaml:"min_x"`
	RightMargin int `yaml:"right_margin"` // MaxX = 屏幕宽 - RightMargin
	WalkY       int `yaml:"walk_y"`       // 行走/追鼠标时固定的 Y
	NormalSpeed int `yaml:"normal_speed"`
	FollowSpeed int `yaml:"follow_speed"`
}

// BehaviorConfig 状态机的节奏与概率
type BehaviorConfig struct {
	Delay             time.Duration `yaml:"delay"`
	IdleDuration      time.Duration `yaml:"idle_duration"`
	SleepDuration     time.Duration `yaml:"sleep_duration"`
	FollowMouseChance float64       `yaml:"follow_mouse_chance"`
	IdleChance        float64       `yaml:"idle_chance"`
	SleepChance       float64       `yaml:"sleep_chance"`
}

// AssetsConfig 精灵图文件
type AssetsConfig struct {
	Dir        string                 `yaml:"dir"`
	Animations map[string]SheetConfig `yaml:"animations"`
}

// SheetConfig 单个动画的素材描述
type SheetConfig struct {
	File   string `yaml:"file"`
	Frames int    `yaml:"frames"`
	Repeat int    `yaml:"repeat"` // 整段帧序列重复次数，0 视为 1
}

// LogConfig 日志
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default 解析内嵌的 defaults.yaml
func Default() (*Config, error) {
	return Parse(defaultsYAML)
}

// Parse 解析一段 YAML 并校验
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查数值是否合理
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Behavior.Delay <= 0 {
		errs = append(errs, fmt.Errorf("delay must be positive, got %s", c.Behavior.Delay))
	}
	if c.Behavior.IdleDuration <= 0 || c.Behavior.SleepDuration <= 0 {
		errs = append(errs, errors.New("idle and sleep durations must be positive"))
	}
	if c.Movement.NormalSpeed <= 0 || c.Movement.FollowSpeed <= 0 {
		errs = append(errs, errors.New("move speeds must be positive"))
	}

	for name, p := range map[string]float64{
		"follow_mouse_chance": c.Behavior.FollowMouseChance,
		"idle_chance":         c.Behavior.IdleChance,
		"sleep_chance":        c.Behavior.SleepChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %v", name, p))
		}
	}

	for name, sheet := range c.Assets.Animations {
		if sheet.File == "" {
			errs = append(errs, fmt.Errorf("animation %q has no file", name))
		}
		if sheet.Frames <= 0 {
			errs = append(errs, fmt.Errorf("animation %q needs at least one frame", name))
		}
	}

	return errors.Join(errs...)
}

// TPS 每秒 tick 数，由 Delay 推出
func (c *Config) TPS() int {
	tps := int(time.Second / c.Behavior.Delay)
	if tps < 1 {
		tps = 1
	}
	return tps
}
