package videosummarizer

// Version is set at build time with -ldflags "-X github.com/videosummarizer/videosummarizer.Version=...".
var Version = "dev"
