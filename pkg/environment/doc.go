// Package environment names the deployment environment a command runs in.
//
// Environment is a typed string with the constants Development, Staging and
// Production. Parse normalises configuration input, accepting the short forms
// "dev", "stage" and "prod", and falls back to Development for anything else.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// The logger package uses Parse in logger.WithEnvironment to pick output
// format and level.
package environment
