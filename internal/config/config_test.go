package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MODEL_PATH", "METADATA_PATH", "UPLOAD_DIR", "MAX_UPLOAD_MEMORY_MB"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.ModelPath != "models/model_embedded.onnx" {
		t.Errorf("ModelPath = %q", cfg.ModelPath)
	}
	if cfg.UploadDir != "" {
		t.Errorf("UploadDir = %q, want empty", cfg.UploadDir)
	}
	if cfg.MaxUploadMemory != 32<<20 {
		t.Errorf("MaxUploadMemory = %d, want %d", cfg.MaxUploadMemory, 32<<20)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MODEL_PATH", "/opt/models/classifier.onnx")
	t.Setenv("UPLOAD_DIR", "/var/uploads")
	t.Setenv("MAX_UPLOAD_MEMORY_MB", "8")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9000")
	}
	if cfg.ModelPath != "/opt/models/classifier.onnx" {
		t.Errorf("ModelPath = %q", cfg.ModelPath)
	}
	if cfg.UploadDir != "/var/uploads" {
		t.Errorf("UploadDir = %q", cfg.UploadDir)
	}
	if cfg.MaxUploadMemory != 8<<20 {
		t.Errorf("MaxUploadMemory = %d, want %d", cfg.MaxUploadMemory, 8<<20)
	}
}

func TestLoadBadMemoryValueFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "lots"},
		{"negative", "-4"},
		{"zero", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAX_UPLOAD_MEMORY_MB", tt.value)
			if cfg := Load(); cfg.MaxUploadMemory != 32<<20 {
				t.Errorf("MaxUploadMemory = %d, want default %d", cfg.MaxUploadMemory, 32<<20)
			}
		})
	}
}
