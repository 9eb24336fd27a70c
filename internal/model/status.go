package model

// DownloadStatus represents the state of a download operation or queue item
type DownloadStatus string

const (
	// StatusPending means the item is queued but not started
	StatusPending DownloadStatus = "Pending"

	// StatusDownloading means bytes are being transferred
	StatusDownloading DownloadStatus = "Downloading"

	// StatusProcessing means the engine is post-processing (merging, remuxing)
	StatusProcessing DownloadStatus = "Processing"

	// StatusFinished means the operation completed successfully
	StatusFinished DownloadStatus = "Finished"

	// StatusError means the operation failed
	StatusError DownloadStatus = "Error"

	// StatusCancelled means the user cancelled the operation
	StatusCancelled DownloadStatus = "Cancelled"
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// IsActive returns true if the status describes work in flight
func (ds DownloadStatus) IsActive() bool {
	return ds == StatusDownloading || ds == StatusProcessing
}

// IsTerminal returns true if the status is a final outcome
func (ds DownloadStatus) IsTerminal() bool {
	return ds == StatusFinished || ds == StatusError || ds == StatusCancelled
}
