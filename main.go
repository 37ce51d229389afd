package main

import "github.com/h1romas4/sazan-imgkit/cmd"

func main() {
	cmd.Execute()
}
