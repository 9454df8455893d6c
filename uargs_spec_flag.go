package uargs

// FlagSpec builds an option that takes no value, like -q or --binary.
type FlagSpec struct {
	BaseSpec
}

// NewFlag starts a flag builder. name identifies the spec in listings and
// diagnostics and must be unique within the command.
func NewFlag(name string) *FlagSpec {
	return &FlagSpec{BaseSpec: BaseSpec{Name: name}}
}

func (f *FlagSpec) SetShorts(set string) *FlagSpec {
	f.Shorts = set
	return f
}

func (f *FlagSpec) SetLongs(names ...string) *FlagSpec {
	f.Longs = names
	return f
}

func (f *FlagSpec) SetHelp(help string) *FlagSpec {
	f.Help = help
	return f
}

func (f *FlagSpec) SetHidden(b bool) *FlagSpec {
	f.Hidden = b
	return f
}

// Register attaches the flag to cmd. apply runs once per occurrence, in
// argument order, so later flags can observe state set by earlier ones.
func (f *FlagSpec) Register(cmd *Cmd, apply func()) error {
	return cmd.register(&spec{
		base:      f.BaseSpec,
		arity:     ArityNone,
		applyFlag: apply,
	})
}
