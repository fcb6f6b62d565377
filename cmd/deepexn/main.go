package main

import (
	"deepexn"
)

func main() {
	deepexn.HandleUncaught(true, func() error {
		return createRootCmd(newApp()).Execute()
	})
}
