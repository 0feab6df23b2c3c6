package userdirs_test

import (
	"fmt"

	"github.com/thoreinstein/userdirs"
)

func ExampleResolver() {
	r := userdirs.New(
		userdirs.WithPlatform(userdirs.PlatformUnix),
		userdirs.WithEnviron(userdirs.MapEnviron{
			"XDG_CONFIG_HOME": "/etc/alt-config",
		}),
		userdirs.WithHomeDir(func() (string, error) { return "/home/leah", nil }),
	)

	config, _ := r.Config()
	data, _ := r.Data()
	_, ok := r.Runtime()

	fmt.Println(config)
	fmt.Println(data)
	fmt.Println(ok)
	// Output:
	// /etc/alt-config
	// /home/leah/.local/share
	// false
}
