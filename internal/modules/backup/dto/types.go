package dto

type BackupOutput struct {
	Count int
	Bytes int
}

type RestoreOutput struct {
	Imported int
	Skipped  int
}
