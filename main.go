// Command qualtrics is a command-line client for the Qualtrics survey
// platform: panels and contact lists, survey distributions, and response
// exports.
package main

import "github.com/baguage/qualtrics-go/cmd"

func main() {
	cmd.Execute()
}
