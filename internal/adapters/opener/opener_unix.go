//go:build !darwin && !windows

package opener

func platformHandler(target string) (string, []string) {
	return "xdg-open", []string{target}
}
