package resolver

import "strings"

// legacySuffixes maps retired architecture/ABI suffixes to their canonical
// forms. The table is checked before alias resolution so that old target
// names keep working; "-mips64-hybrid" is already canonical and not listed.
var legacySuffixes = []struct {
	old, canonical string
}{
	{"-mips-nocheri", "-mips64"},
	{"-mips-purecap", "-mips64-purecap"},
	{"-mips-hybrid", "-mips64-hybrid"},
}

// NormalizeLegacySuffix rewrites a retired suffix to its canonical form.
// Names without a legacy suffix are returned unchanged.
func NormalizeLegacySuffix(name string) string {
	for _, s := range legacySuffixes {
		if strings.HasSuffix(name, s.old) {
			return strings.TrimSuffix(name, s.old) + s.canonical
		}
	}
	return name
}
