package domain

import (
	"strings"
	"testing"
)

func TestSetting_Validate(t *testing.T) {
	tests := []struct {
		name    string
		setting *Setting
		wantErr bool
	}{
		{
			name:    "valid setting",
			setting: NewSetting("ssui-theme", `{"--primary":"#fff"}`),
			wantErr: false,
		},
		{
			name:    "empty value is allowed",
			setting: NewSetting("ssui-theme", ""),
			wantErr: false,
		},
		{
			name:    "empty key",
			setting: NewSetting("", "x"),
			wantErr: true,
		},
		{
			name:    "whitespace key",
			setting: NewSetting("   ", "x"),
			wantErr: true,
		},
		{
			name:    "key too long",
			setting: NewSetting(strings.Repeat("k", MaxSettingKeyLength+1), "x"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setting.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSetting_SetsTimestamp(t *testing.T) {
	s := NewSetting("k", "v")
	if s.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}
