package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

// ── PeriodList 排序与去重 ──

func TestPeriodList_Normalized(t *testing.T) {
	cases := []struct {
		in   PeriodList
		want PeriodList
	}{
		{PeriodList{3, 1, 2}, PeriodList{1, 2, 3}},
		{PeriodList{PeriodOnDemand, 2}, PeriodList{2, PeriodOnDemand}},
		{PeriodList{2, PeriodOnDemand, 2, 1}, PeriodList{1, 2, PeriodOnDemand}},
		{PeriodList{PeriodOnDemand}, PeriodList{PeriodOnDemand}},
		{PeriodList{}, PeriodList{}},
	}
	for _, tc := range cases {
		got := tc.in.Normalized()
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Normalized(%v): 期望 %v，实际 %v", tc.in, tc.want, got)
		}
	}
}

func TestPeriodList_CanonicalString(t *testing.T) {
	got := PeriodList{PeriodOnDemand, 3, 2}.CanonicalString()
	if got != "2,3,OD" {
		t.Errorf("期望 2,3,OD，实际=%s", got)
	}
}

// ── PeriodList JSON 表现 ──

func TestPeriodList_MarshalOD(t *testing.T) {
	b, err := json.Marshal(PeriodList{2, PeriodOnDemand})
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	if string(b) != `[2,"OD"]` {
		t.Errorf(`期望 [2,"OD"]，实际=%s`, b)
	}
}

func TestPeriodList_UnmarshalMixed(t *testing.T) {
	var p PeriodList
	if err := json.Unmarshal([]byte(`[1,"OD","3"]`), &p); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	want := PeriodList{1, PeriodOnDemand, 3}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("期望 %v，实际 %v", want, p)
	}
}

func TestPeriodList_UnmarshalRejectsGarbage(t *testing.T) {
	var p PeriodList
	if err := json.Unmarshal([]byte(`[1,"abc"]`), &p); err == nil {
		t.Error("非法元素应报错")
	}
}

// ── PostgreSQL INT[] 往返 ──

func TestPeriodList_ScanValue(t *testing.T) {
	var p PeriodList
	if err := p.Scan("{1,2,0}"); err != nil {
		t.Fatalf("Scan 失败: %v", err)
	}
	if !reflect.DeepEqual(p, PeriodList{1, 2, 0}) {
		t.Errorf("期望 [1 2 0]，实际 %v", p)
	}

	v, err := p.Value()
	if err != nil {
		t.Fatalf("Value 失败: %v", err)
	}
	if v != "{1,2,0}" {
		t.Errorf("期望 {1,2,0}，实际=%v", v)
	}
}
