package domain

import "go.trai.ch/zerr"

// CrossTarget identifies the architecture/ABI variant a project is built for.
// It replaces suffix-string parsing with an explicit enumeration; the name
// suffix is derived from the variant, never the other way around.
type CrossTarget uint8

const (
	// CrossUnset is the zero value and never names a valid variant.
	CrossUnset CrossTarget = iota

	// CrossNone marks variant-independent projects (e.g. qemu).
	CrossNone

	// CrossNative builds for the host architecture.
	CrossNative

	CrossMIPS64
	CrossMIPS64Hybrid
	CrossMIPS64Purecap
	CrossRISCV64
	CrossRISCV64Purecap
	CrossAMD64

	CrossBaremetalMIPS64
	CrossBaremetalRISCV64
	CrossBaremetalRISCV64Purecap
)

// OSFamily is the operating system a cross target runs on. It decides which
// implicit OS dependency a cross-compiled project picks up.
type OSFamily uint8

const (
	OSNone OSFamily = iota
	OSHost
	OSCheriBSD
	OSFreeBSD
	OSBaremetal
)

type crossTargetInfo struct {
	id     string
	suffix string
	os     OSFamily
}

var crossTargetTable = map[CrossTarget]crossTargetInfo{
	CrossNone:                    {id: "", suffix: "", os: OSNone},
	CrossNative:                  {id: "native", suffix: "-native", os: OSHost},
	CrossMIPS64:                  {id: "mips64", suffix: "-mips64", os: OSCheriBSD},
	CrossMIPS64Hybrid:            {id: "mips64-hybrid", suffix: "-mips64-hybrid", os: OSCheriBSD},
	CrossMIPS64Purecap:           {id: "mips64-purecap", suffix: "-mips64-purecap", os: OSCheriBSD},
	CrossRISCV64:                 {id: "riscv64", suffix: "-riscv64", os: OSCheriBSD},
	CrossRISCV64Purecap:          {id: "riscv64-purecap", suffix: "-riscv64-purecap", os: OSCheriBSD},
	CrossAMD64:                   {id: "amd64", suffix: "-amd64", os: OSFreeBSD},
	CrossBaremetalMIPS64:         {id: "baremetal-mips64", suffix: "-baremetal-mips64", os: OSBaremetal},
	CrossBaremetalRISCV64:        {id: "baremetal-riscv64", suffix: "-baremetal-riscv64", os: OSBaremetal},
	CrossBaremetalRISCV64Purecap: {id: "baremetal-riscv64-purecap", suffix: "-baremetal-riscv64-purecap", os: OSBaremetal},
}

// String returns the variant identifier, e.g. "mips64-hybrid". It is empty
// for CrossNone and CrossUnset.
func (ct CrossTarget) String() string {
	return crossTargetTable[ct].id
}

// Suffix returns the target-name suffix for the variant, e.g. "-native".
func (ct CrossTarget) Suffix() string {
	return crossTargetTable[ct].suffix
}

// OS returns the operating system family the variant targets.
func (ct CrossTarget) OS() OSFamily {
	return crossTargetTable[ct].os
}

// ParseCrossTarget maps a variant identifier back to its CrossTarget.
// It returns ErrUnknownVariant for anything not in the table.
func ParseCrossTarget(id string) (CrossTarget, error) {
	for ct, info := range crossTargetTable {
		if ct != CrossNone && info.id == id {
			return ct, nil
		}
	}
	return CrossUnset, zerr.With(zerr.Wrap(ErrUnknownVariant, "variant parsing failed"), "variant", id)
}
