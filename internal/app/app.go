package app

// Run boots the mock API and blocks until SIGINT or SIGTERM.
func Run() {
	InitDefaultLogger()
	MustReadEnv()
	MustInitApplicationLogger()

	MustLoadFixtures()
	defer StopFixtures()

	MustInitStorage()
	defer CloseStorage()

	MustListenAndServeHTTP()
}
