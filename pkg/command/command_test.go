package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("single argument", func(t *testing.T) {
		assert.Equal(t, []string{"hemtt", "build"}, Build("hemtt", []string{"build"}))
	})

	t.Run("multiple arguments in order", func(t *testing.T) {
		assert.Equal(t,
			[]string{"hemtt", "dev", "-b", "--no-rap"},
			Build("hemtt", []string{"dev", "-b", "--no-rap"}))
	})

	t.Run("empty arguments", func(t *testing.T) {
		assert.Equal(t, []string{"hemtt"}, Build("hemtt", []string{}))
	})

	t.Run("nil arguments", func(t *testing.T) {
		assert.Equal(t, []string{"hemtt"}, Build("hemtt", nil))
	})

	t.Run("full executable path", func(t *testing.T) {
		assert.Equal(t,
			[]string{"/usr/local/bin/hemtt", "version"},
			Build("/usr/local/bin/hemtt", []string{"version"}))
	})

	t.Run("does not alias the input slice", func(t *testing.T) {
		args := []string{"check"}
		cmd := Build("hemtt", args)
		cmd[1] = "mutated"
		assert.Equal(t, []string{"check"}, args)
	})
}

func TestOptions(t *testing.T) {
	t.Run("check plain", func(t *testing.T) {
		assert.Equal(t, []string{"check"}, Options{}.Check())
	})

	t.Run("check pedantic and verbose", func(t *testing.T) {
		opts := Options{Verbose: true, Pedantic: true}
		assert.Equal(t, []string{"check", "--pedantic", "-v"}, opts.Check())
	})

	t.Run("dev with binarize", func(t *testing.T) {
		assert.Equal(t, []string{"dev", "-b"}, Options{}.Dev(true))
		assert.Equal(t, []string{"dev"}, Options{}.Dev(false))
	})

	t.Run("pedantic only affects check", func(t *testing.T) {
		opts := Options{Pedantic: true}
		assert.Equal(t, []string{"build"}, opts.Build())
		assert.Equal(t, []string{"launch"}, opts.Launch())
	})

	t.Run("release flags", func(t *testing.T) {
		assert.Equal(t, []string{"release"}, Options{}.Release(false, false))
		assert.Equal(t,
			[]string{"release", "--no-sign", "--no-archive"},
			Options{}.Release(true, true))
	})

	t.Run("stringtable helpers", func(t *testing.T) {
		assert.Equal(t, []string{"ln", "sort"}, Options{}.LnSort())
		assert.Equal(t, []string{"ln", "coverage"}, Options{}.LnCoverage())
	})

	t.Run("utils with paths", func(t *testing.T) {
		assert.Equal(t, []string{"utils", "fnl", "addons"}, Options{}.UtilsFnl("addons"))
		assert.Equal(t, []string{"utils", "bom"}, Options{}.UtilsBom())
	})

	t.Run("paa utilities", func(t *testing.T) {
		assert.Equal(t,
			[]string{"utils", "paa", "convert", "logo.png", "logo.paa"},
			Options{}.PaaConvert("logo.png", "logo.paa"))
		assert.Equal(t,
			[]string{"utils", "paa", "inspect", "logo.paa"},
			Options{}.PaaInspect("logo.paa"))
	})

	t.Run("pbo utilities", func(t *testing.T) {
		assert.Equal(t, []string{"utils", "pbo", "inspect", "mod.pbo"}, Options{}.PboInspect("mod.pbo"))
		assert.Equal(t, []string{"utils", "pbo", "unpack", "mod.pbo"}, Options{}.PboUnpack("mod.pbo"))
	})

	t.Run("project helpers", func(t *testing.T) {
		assert.Equal(t, []string{"license", "mit"}, Options{}.License("mit"))
		assert.Equal(t, []string{"script", "release_prep"}, Options{}.Script("release_prep"))
		assert.Equal(t, []string{"value", "project.name"}, Options{}.Value("project.name"))
		assert.Equal(t, []string{"keys", "generate"}, Options{}.KeysGenerate())
	})

	t.Run("verbose applies to the whole catalog", func(t *testing.T) {
		opts := Options{Verbose: true}
		assert.Equal(t, []string{"keys", "generate", "-v"}, opts.KeysGenerate())
		assert.Equal(t, []string{"value", "project.name", "-v"}, opts.Value("project.name"))
	})
}
