package uargs

type parseCfg struct {
	echoStyle    bool
	optionsFirst bool
	lookupEnv    func(string) (string, bool)
}

// ParseOpt configures a single parse session.
type ParseOpt func(*parseCfg)

// WithEchoStyle reclassifies dashed arguments as operands unless they consist
// entirely of recognized short flags, and stops treating "--" as a terminator.
func WithEchoStyle(enable bool) ParseOpt {
	return func(c *parseCfg) {
		c.echoStyle = enable
	}
}

// WithOptionsFirst stops option recognition at the first operand, leaving
// everything after it untouched for a wrapped command line.
func WithOptionsFirst(enable bool) ParseOpt {
	return func(c *parseCfg) {
		c.optionsFirst = enable
	}
}

// WithEnvLookup overrides where environment defaults are read from. The
// default is os.LookupEnv.
func WithEnvLookup(lookup func(string) (string, bool)) ParseOpt {
	return func(c *parseCfg) {
		c.lookupEnv = lookup
	}
}
