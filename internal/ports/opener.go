package ports

// Opener opens a URL or file with the platform's default handler
type Opener interface {
	Open(target string) error
}
