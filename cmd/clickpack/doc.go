/*
clickpack packages web-app shortcuts into Ubuntu Touch .click files.

# Usage

	clickpack [flags] [shortcut.yaml]

The shortcut can be described either in a YAML request file or directly on
the command line; flags take precedence over request file values.

# Flags

	-h, --help                  help for clickpack
	    --icon-url string       icon address; bundled default icon when unset or extension-less
	    --name string           display name of the shortcut
	-o, --out string            optional: copy the finished click package to this path
	    --staging-dir string    staging directory, cleared on every build; defaults to the user cache
	    --theme-color string    splash/theme color token for the shortcut
	    --url string            web site address to create the shortcut for
	    --url-patterns string   URL patterns the web-app container confines navigation to
	-v, --version               version for clickpack
*/
package main
