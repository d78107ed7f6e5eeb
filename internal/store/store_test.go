package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckExists(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name      string
		dbFile    string
		setup     func(string) error
		wantExist bool
		wantError bool
	}{
		{
			name:   "database exists",
			dbFile: DefaultDBFile,
			setup: func(path string) error {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				return f.Close()
			},
			wantExist: true,
			wantError: false,
		},
		{
			name:   "database with configured file name",
			dbFile: "scale.db",
			setup: func(path string) error {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				return f.Close()
			},
			wantExist: true,
			wantError: false,
		},
		{
			name:   "database does not exist",
			dbFile: DefaultDBFile,
			setup: func(path string) error {
				return nil
			},
			wantExist: false,
			wantError: false,
		},
		{
			name:   "database path is directory",
			dbFile: DefaultDBFile,
			setup: func(path string) error {
				return os.Mkdir(path, 0o755)
			},
			wantExist: false,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDir := filepath.Join(tmpDir, tt.name)
			if err := os.Mkdir(testDir, 0o755); err != nil {
				t.Fatalf("failed to create test dir: %v", err)
			}

			dbPath := filepath.Join(testDir, tt.dbFile)
			if err := tt.setup(dbPath); err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			exists, err := CheckExists(dbPath)

			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if exists != tt.wantExist {
				t.Errorf("got exists=%v, want %v", exists, tt.wantExist)
			}
		})
	}
}

func TestSavingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := SavingDir()
	if err != nil {
		t.Fatalf("SavingDir() failed: %v", err)
	}
	if filepath.Base(dir) != SavingFolder {
		t.Errorf("got %q, want base %q", dir, SavingFolder)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("SavingDir should not create the directory")
	}
}

func TestEnsureSavingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir, err := EnsureSavingDir()
	if err != nil {
		t.Fatalf("EnsureSavingDir() failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}

	// Second call is a no-op
	if _, err := EnsureSavingDir(); err != nil {
		t.Errorf("second EnsureSavingDir() failed: %v", err)
	}
}

func TestDBPath(t *testing.T) {
	path := DBPath("data")
	if !strings.HasSuffix(path, DefaultDBFile) {
		t.Errorf("got %q, want suffix %q", path, DefaultDBFile)
	}
}
