package main

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestReports(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "lowering")
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()
	if err := Analyzer.Flags.Set("emit", dir); err != nil {
		t.Fatalf("set emit flag: %s", err)
	}
	defer Analyzer.Flags.Set("emit", "")

	analysistest.Run(t, analysistest.TestData(), Analyzer, "clean")

	data, err := os.ReadFile(filepath.Join(dir, "clean.js"))
	if err != nil {
		t.Fatalf("read emitted program: %s", err)
	}

	want := `var fib = function (n) {
  var a = 0, b = 1;
  var i = 0;
  while (i < n) {
    var tmp$0, tmp$1;
    tmp$0 = b;
    tmp$1 = a + b;
    a = tmp$0;
    b = tmp$1;
    i++;
  }
  return a;
};
var mid = function (lo, hi) {
  return lo + Math.trunc((hi - lo) / 2);
};
var main = function () {
  console.log(fib(10));
};
`
	if got := string(data); got != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}
