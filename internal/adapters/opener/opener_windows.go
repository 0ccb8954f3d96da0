//go:build windows

package opener

func platformHandler(target string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", target}
}
