package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		newLogger,
		fx.Annotate(dialectsCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(fmtCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(tokenizeCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
