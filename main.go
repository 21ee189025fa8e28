package main

import "github.com/knpwrs/wcurl/cmd"

// main is the entry point for the wcurl CLI application.
//
// wcurl downloads one or more URLs by handing them to curl with a curated set
// of defaults: retries, redirects, no-clobber and filenames taken from the URL.
func main() {
	cmd.Execute()
}
