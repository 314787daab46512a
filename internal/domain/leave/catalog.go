package leave

import "strings"

type LeaveType struct {
	Code  string `json:"value"`
	Label string `json:"label"`
}

// LeaveTypes is the dropdown offered by the request form.
var LeaveTypes = []LeaveType{
	{Code: "WFH", Label: "Work From Home"},
	{Code: "WFHX", Label: "WFH Exception"},
	{Code: "TECH_ERR", Label: "Tech. Error"},
	{Code: "ON_DUTY", Label: "On Duty"},
	{Code: "COFF", Label: "Compensatory Off"},
	{Code: "BDL", Label: "Birthday Leave"},
	{Code: "ASL", Label: "Associate Special Leave"},
}

// ReasonOthers is the reason code that requires free text.
const ReasonOthers = "Others"

var Reasons = []string{
	"Personal Work",
	"Medical",
	"Family Function",
	"Travel",
	ReasonOthers,
}

func LeaveTypeCodes() []string {
	out := make([]string, len(LeaveTypes))
	for i, t := range LeaveTypes {
		out[i] = t.Code
	}
	return out
}

// LeaveTypeLabel falls back to the code for unknown types.
func LeaveTypeLabel(code string) string {
	for _, t := range LeaveTypes {
		if strings.EqualFold(t.Code, code) {
			return t.Label
		}
	}
	return code
}

func isOthers(reason string) bool {
	return strings.EqualFold(strings.TrimSpace(reason), ReasonOthers)
}
