// Package command assembles HEMTT argument vectors.
package command

// Build returns the full process argument vector for invoking exe with args.
// The result is handed to process creation as a list, never a shell string,
// so nothing is validated or escaped here.
func Build(exe string, args []string) []string {
	cmd := make([]string, 0, len(args)+1)
	cmd = append(cmd, exe)
	cmd = append(cmd, args...)
	return cmd
}

// Options are the persistent HEMTT flag toggles applied to catalog commands.
type Options struct {
	// Verbose adds -v to every command.
	Verbose bool
	// Pedantic enables pedantic lints on check.
	Pedantic bool
}

func (o Options) verboseFlags(args []string) []string {
	if o.Verbose {
		args = append(args, "-v")
	}
	return args
}

// Check returns the arguments for `hemtt check`.
func (o Options) Check() []string {
	args := []string{"check"}
	if o.Pedantic {
		args = append(args, "--pedantic")
	}
	return o.verboseFlags(args)
}

// Dev returns the arguments for `hemtt dev`. binarize adds -b so addons are
// binarized like a local build.
func (o Options) Dev(binarize bool) []string {
	args := []string{"dev"}
	if binarize {
		args = append(args, "-b")
	}
	return o.verboseFlags(args)
}

// Launch returns the arguments for `hemtt launch`, building the project and
// starting Arma 3 with the mod loaded.
func (o Options) Launch() []string {
	return o.verboseFlags([]string{"launch"})
}

// Build returns the arguments for `hemtt build`.
func (o Options) Build() []string {
	return o.verboseFlags([]string{"build"})
}

// Release returns the arguments for `hemtt release`. noSign skips PBO
// signing, noArchive skips the zip archive.
func (o Options) Release(noSign, noArchive bool) []string {
	args := []string{"release"}
	if noSign {
		args = append(args, "--no-sign")
	}
	if noArchive {
		args = append(args, "--no-archive")
	}
	return o.verboseFlags(args)
}

// LnSort returns the arguments for `hemtt ln sort`.
func (o Options) LnSort() []string {
	return o.verboseFlags([]string{"ln", "sort"})
}

// LnCoverage returns the arguments for `hemtt ln coverage`.
func (o Options) LnCoverage() []string {
	return o.verboseFlags([]string{"ln", "coverage"})
}

// UtilsFnl returns the arguments for `hemtt utils fnl`, inserting final
// newlines into the given paths (or the whole project when empty).
func (o Options) UtilsFnl(paths ...string) []string {
	return o.verboseFlags(append([]string{"utils", "fnl"}, paths...))
}

// UtilsBom returns the arguments for `hemtt utils bom`, removing UTF-8 BOM
// markers from the given paths.
func (o Options) UtilsBom(paths ...string) []string {
	return o.verboseFlags(append([]string{"utils", "bom"}, paths...))
}

// PaaConvert returns the arguments for `hemtt utils paa convert`, converting
// between PAA and common image formats based on the file extensions.
func (o Options) PaaConvert(source, target string) []string {
	return o.verboseFlags([]string{"utils", "paa", "convert", source, target})
}

// PaaInspect returns the arguments for `hemtt utils paa inspect`.
func (o Options) PaaInspect(path string) []string {
	return o.verboseFlags([]string{"utils", "paa", "inspect", path})
}

// PboInspect returns the arguments for `hemtt utils pbo inspect`.
func (o Options) PboInspect(path string) []string {
	return o.verboseFlags([]string{"utils", "pbo", "inspect", path})
}

// PboUnpack returns the arguments for `hemtt utils pbo unpack`.
func (o Options) PboUnpack(path string) []string {
	return o.verboseFlags([]string{"utils", "pbo", "unpack", path})
}

// License returns the arguments for `hemtt license`, adding or updating the
// project license file with the named license.
func (o Options) License(name string) []string {
	return o.verboseFlags([]string{"license", name})
}

// Script returns the arguments for `hemtt script`, running the named Rhai
// script (without the .rhai extension).
func (o Options) Script(name string) []string {
	return o.verboseFlags([]string{"script", name})
}

// Value returns the arguments for `hemtt value`, printing a project
// configuration value such as project.name or project.version.
func (o Options) Value(key string) []string {
	return o.verboseFlags([]string{"value", key})
}

// KeysGenerate returns the arguments for `hemtt keys generate`, creating a
// private key for signing PBOs.
func (o Options) KeysGenerate() []string {
	return o.verboseFlags([]string{"keys", "generate"})
}
