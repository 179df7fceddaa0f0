// Package operations implements the apiresource command line commands.
package operations

// Version is reported by 'apiresource --version'.
const Version = "0.3.0"
