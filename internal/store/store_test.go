package store

import (
	"path/filepath"
	"testing"

	"mixlattice/internal/designer"
	"mixlattice/internal/model"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "mixlattice.db")
	st, err := New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func createTestResult(t *testing.T) *model.DesignResult {
	t.Helper()

	ings := []model.Ingredient{
		{Name: "A", Purity: 0.98, MaxActive: 0.20, Density: 1.2},
		{Name: "B", Purity: 0.95, MaxActive: 0.15, Density: 0.9},
		{Name: "S", Purity: 1.00, MaxActive: 1.00, Density: 1.0, IsSolvent: true},
	}
	params := model.GlobalParams{Degree: 3, TotalMass: 250, Replicates: 2, Closure: model.ClosureRatio}

	result, err := designer.NewEngine().Evaluate(ings, params)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	return result
}

// TestSaveAndGetRun 保存后完整读回
func TestSaveAndGetRun(t *testing.T) {
	st := createTestStore(t)
	result := createTestResult(t)

	// 人为补一条剔除统计，验证读回
	result.RejectedCount = 2
	result.RejectReasons[model.RejectNegativeSolventMass] = 2

	runID, err := st.SaveRun(result)
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}
	if runID == "" {
		t.Fatal("SaveRun 返回空 ID")
	}

	record, err := st.GetRun(runID)
	if err != nil {
		t.Fatalf("GetRun error: %v", err)
	}

	if record.Degree != 3 || record.TotalMass != 250 || record.Replicates != 2 {
		t.Errorf("全局参数回读不一致: %+v", record.RunSummary)
	}
	if record.DesignMode != string(model.ModeSolvent) {
		t.Errorf("DesignMode = %s, want %s", record.DesignMode, model.ModeSolvent)
	}
	if record.SolventName != "S" {
		t.Errorf("SolventName = %s, want S", record.SolventName)
	}
	if record.Accepted != result.AcceptedCount() {
		t.Errorf("Accepted = %d, want %d", record.Accepted, result.AcceptedCount())
	}
	if record.Rejected != 2 {
		t.Errorf("Rejected = %d, want 2", record.Rejected)
	}
	if record.RejectReasons[model.RejectNegativeSolventMass] != 2 {
		t.Errorf("剔除统计回读不一致: %v", record.RejectReasons)
	}

	// 原料按原始顺序回读
	if len(record.Ingredients) != 3 {
		t.Fatalf("原料数量 = %d, want 3", len(record.Ingredients))
	}
	for i, name := range []string{"A", "B", "S"} {
		if record.Ingredients[i].Name != name {
			t.Errorf("原料 %d = %s, want %s", i, record.Ingredients[i].Name, name)
		}
	}
	if !record.Ingredients[2].IsSolvent {
		t.Error("溶剂标记回读丢失")
	}
	if record.Ingredients[0].Purity != 0.98 || record.Ingredients[0].MaxActive != 0.20 {
		t.Errorf("原料参数回读不一致: %+v", record.Ingredients[0])
	}
}

// TestListRuns 列表与计数
func TestListRuns(t *testing.T) {
	st := createTestStore(t)
	result := createTestResult(t)

	for i := 0; i < 3; i++ {
		if _, err := st.SaveRun(result); err != nil {
			t.Fatalf("SaveRun error: %v", err)
		}
	}

	runs, err := st.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns error: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("运行数量 = %d, want 3", len(runs))
	}

	count, err := st.CountRuns()
	if err != nil {
		t.Fatalf("CountRuns error: %v", err)
	}
	if count != 3 {
		t.Errorf("CountRuns = %d, want 3", count)
	}
}

// TestDeleteRun 删除运行及其关联数据
func TestDeleteRun(t *testing.T) {
	st := createTestStore(t)
	result := createTestResult(t)

	runID, err := st.SaveRun(result)
	if err != nil {
		t.Fatalf("SaveRun error: %v", err)
	}

	if err := st.DeleteRun(runID); err != nil {
		t.Fatalf("DeleteRun error: %v", err)
	}

	if _, err := st.GetRun(runID); err == nil {
		t.Error("删除后仍能读到运行记录")
	}

	count, _ := st.CountRuns()
	if count != 0 {
		t.Errorf("删除后 CountRuns = %d, want 0", count)
	}

	// 重复删除返回 not found
	if err := st.DeleteRun(runID); err == nil {
		t.Error("删除不存在的记录未报错")
	}
}

// TestEmptyList 空库列表为空切片
func TestEmptyList(t *testing.T) {
	st := createTestStore(t)

	runs, err := st.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("空库运行数量 = %d, want 0", len(runs))
	}
}
