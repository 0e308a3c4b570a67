package service

import (
	"testing"

	"github.com/gemini-dk/campus-calendar-web-sub000/internal/model"
)

func TestRecommendedMaxAbsence_Threshold70(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 0},
		{-5, 0},
		{1, 0},
		{10, 3},
		{14, 4},  // ceil(14*0.7)=10 → 4
		{15, 4},  // ceil(15*0.7)=11 → 4
		{30, 9},  // ceil(30*0.7)=21 → 9
		{100, 30},
	}
	for _, tc := range cases {
		got := RecommendedMaxAbsence(model.AbsencePolicyThreshold70, tc.total)
		if got != tc.want {
			t.Errorf("threshold70(%d): 期望 %d，实际 %d", tc.total, tc.want, got)
		}
	}
}

func TestRecommendedMaxAbsence_Flat33(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 0},
		{10, 3},
		{14, 4},  // floor(14*0.33)=4
		{15, 4},  // floor(15*0.33)=4
		{30, 9},  // floor(30*0.33)=9
		{100, 33},
	}
	for _, tc := range cases {
		got := RecommendedMaxAbsence(model.AbsencePolicyFlat33, tc.total)
		if got != tc.want {
			t.Errorf("flat33(%d): 期望 %d，实际 %d", tc.total, tc.want, got)
		}
	}
}

func TestRecommendedMaxAbsence_UnknownPolicyFallsBack(t *testing.T) {
	// 未知策略按默认策略（threshold70）处理
	if got := RecommendedMaxAbsence(model.AbsencePolicy("unknown"), 30); got != 9 {
		t.Errorf("未知策略期望按默认策略得 9，实际 %d", got)
	}
}

func TestRecommendedMaxAbsence_NeverExceedsTotal(t *testing.T) {
	for total := 1; total <= 50; total++ {
		for _, policy := range []model.AbsencePolicy{model.AbsencePolicyThreshold70, model.AbsencePolicyFlat33} {
			got := RecommendedMaxAbsence(policy, total)
			if got < 0 || got > total {
				t.Errorf("%s(%d)=%d 超出 [0,%d]", policy, total, got, total)
			}
		}
	}
}
