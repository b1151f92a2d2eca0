package activity

import "gopkg.in/guregu/null.v3"

// Summary is the flattened view of an activity written by the inspect command.
type Summary struct {
	ActivityID    int         `json:"activityID"`
	ActivityKey   null.String `json:"activityKey"`
	ActivityName  null.String `json:"activityName"`
	DesigneeCount int         `json:"designeeCount"`
	HasDesignees  bool        `json:"hasDesignees"`
	Fingerprint   string      `json:"fingerprint"`
}
