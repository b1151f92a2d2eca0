package activity

// Document is the decoded content of one activity document: either a single
// activity, or a list of activities when List is set.
type Document struct {
	Activities []*Model
	List       bool
}

func NewSingleDocument(m *Model) *Document {
	return &Document{Activities: []*Model{m}}
}

func NewListDocument(ms ...*Model) *Document {
	if ms == nil {
		ms = []*Model{}
	}
	return &Document{Activities: ms, List: true}
}
