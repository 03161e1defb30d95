package walker

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("class X {}"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func relPaths(files []FileInfo) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.RelPath)
	}
	return out
}

func TestWalkFindsJavaSources(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main/java/App.java")
	writeFile(t, root, "src/main/java/sub/Service.java")
	writeFile(t, root, "src/main/kotlin/Util.kt")
	writeFile(t, root, "README.md")
	writeFile(t, root, "pom.xml")

	files, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), relPaths(files))
	}
}

func TestWalkSkipsBuildAndHiddenDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/App.java")
	writeFile(t, root, "target/generated/Gen.java")
	writeFile(t, root, "build/Out.java")
	writeFile(t, root, "node_modules/dep/Dep.java")
	writeFile(t, root, ".git/hooks/Hook.java")
	writeFile(t, root, ".hidden/Secret.java")

	files, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].RelPath != "src/App.java" {
		t.Errorf("got %v, want only src/App.java", relPaths(files))
	}
}

func TestWalkIncludeExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/App.java")
	writeFile(t, root, "src/AppTest.java")
	writeFile(t, root, "src/other/Helper.java")

	files, err := Walk(Config{
		RootDir: root,
		Include: []string{"src/**/*.java"},
		Exclude: []string{"*Test.java"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := relPaths(files)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 files", got)
	}
	for _, p := range got {
		if p == "src/AppTest.java" {
			t.Error("excluded test file was returned")
		}
	}
}

func TestWalkDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/B.java")
	writeFile(t, root, "a/A.java")
	writeFile(t, root, "c/C.java")

	first, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Walk(Config{RootDir: root})
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].RelPath != second[i].RelPath {
			t.Errorf("order differs at %d: %s vs %s", i, first[i].RelPath, second[i].RelPath)
		}
	}
	if first[0].RelPath != "a/A.java" {
		t.Errorf("expected lexical order, got %v", relPaths(first))
	}
}

func TestWalkSizeLimit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Small.java")
	big := filepath.Join(root, "Big.java")
	if err := os.WriteFile(big, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := Walk(Config{RootDir: root, MaxFileSize: 1024})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].BaseName != "Small.java" {
		t.Errorf("got %v, want only Small.java", relPaths(files))
	}
}
