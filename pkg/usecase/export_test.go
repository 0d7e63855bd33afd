package usecase

// Export unexported functions for testing
var (
	DownloadArchiveForTest    = downloadArchive
	UniqueRepositoriesForTest = uniqueRepositories
)
