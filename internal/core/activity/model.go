package activity

import (
	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"
)

type Model struct {
	ActivityID   int         `json:"activityID"`
	ActivityKey  null.String `json:"activityKey"`
	ActivityName null.String `json:"activityName"`
	// Designees is nil when absent and non-nil (possibly empty) when present.
	Designees []Designee `json:"designees"`
}

func New(id int) *Model {
	return &Model{ActivityID: id}
}

// AddDesignees appends to the designee collection, materialising it if absent.
func (m *Model) AddDesignees(designees ...Designee) {
	if m.Designees == nil {
		m.Designees = make([]Designee, 0, len(designees))
	}
	m.Designees = append(m.Designees, designees...)
}

func (m Model) DesigneeCount() int {
	return len(m.Designees)
}

func (m Model) HasDesignees() bool {
	return m.Designees != nil
}

func (m *Model) Clone() *Model {
	c := *m
	if m.Designees != nil {
		c.Designees = lo.Map(m.Designees, func(d Designee, _ int) Designee {
			return d.Clone()
		})
	}
	return &c
}
