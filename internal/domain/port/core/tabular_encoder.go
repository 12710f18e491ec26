package core

// TabularEncoder turns a homogeneous list of flat records into an opaque
// spreadsheet byte blob. Rows must all have the same shape as the declared
// header list; column naming and cell typing are the encoder's concern.
type TabularEncoder interface {
	Encode(sheet string, headers []string, rows [][]any) ([]byte, error)
}
