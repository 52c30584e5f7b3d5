package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFindFile_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	manifestPath := filepath.Join(tmpDir, "release.yaml")
	if err := os.WriteFile(manifestPath, []byte("test"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	found, err := FindFile(tmpDir, manifestPath)
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != manifestPath {
		t.Errorf("expected %q, got %q", manifestPath, found)
	}

	_, err = FindFile(tmpDir, filepath.Join(tmpDir, "nonexistent"))
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestFindFile_TraverseUp(t *testing.T) {
	tmpDir := t.TempDir()

	subdir2 := filepath.Join(tmpDir, "subdir1", "subdir2")
	if err := os.MkdirAll(subdir2, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}

	manifestPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(manifestPath, []byte("test"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	found, err := FindFile(subdir2, "")
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != manifestPath {
		t.Errorf("expected %q, got %q", manifestPath, found)
	}
}

func TestFindFile_StopAtGit(t *testing.T) {
	tmpDir := t.TempDir()

	projectDir := filepath.Join(tmpDir, "project")
	if err := os.MkdirAll(filepath.Join(projectDir, ".git"), 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}
	subDir := filepath.Join(projectDir, "release")
	if err := os.MkdirAll(subDir, 0o700); err != nil {
		t.Fatalf("failed to create directories: %v", err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("test"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	_, err := FindFile(subDir, "")
	if err == nil {
		t.Error("expected search to stop at the .git directory")
	}

	projectManifest := filepath.Join(projectDir, FileName)
	if err := os.WriteFile(projectManifest, []byte("test"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	found, err := FindFile(subDir, "")
	if err != nil {
		t.Fatalf("FindFile failed: %v", err)
	}
	if found != projectManifest {
		t.Errorf("expected %q, got %q", projectManifest, found)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Manifest
		wantErr bool
	}{
		{
			name: "releases with artifacts override",
			content: `artifacts: artifacts.yaml
releases:
  - product: Espresso
    from: 3.6.0-rc01
    to: 3.6.0
  - product: Core
    from: 1.6.0
    to: 1.7.0-alpha01
`,
			want: &Manifest{
				Artifacts: "artifacts.yaml",
				Releases: []Release{
					{Product: "Espresso", From: "3.6.0-rc01", To: "3.6.0"},
					{Product: "Core", From: "1.6.0", To: "1.7.0-alpha01"},
				},
			},
		},
		{name: "empty", content: "", wantErr: true},
		{name: "no releases", content: "releases: []\n", wantErr: true},
		{name: "missing product", content: "releases:\n  - from: 1.0.0\n    to: 1.1.0-alpha01\n", wantErr: true},
		{name: "missing from", content: "releases:\n  - product: Core\n    to: 1.1.0-alpha01\n", wantErr: true},
		{name: "missing to", content: "releases:\n  - product: Core\n    from: 1.0.0\n", wantErr: true},
		{name: "not yaml", content: "releases: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.content))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidManifest) {
					t.Errorf("Parse() error = %v, want ErrInvalidManifest", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFile_ResolvesArtifactsPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)
	content := "artifacts: maps/artifacts.yaml\nreleases:\n  - product: Core\n    from: 1.0.0\n    to: 1.1.0-alpha01\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	m, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if want := filepath.Join(tmpDir, "maps", "artifacts.yaml"); m.Artifacts != want {
		t.Errorf("Artifacts = %q, want %q", m.Artifacts, want)
	}

	if _, err := ParseFile(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
