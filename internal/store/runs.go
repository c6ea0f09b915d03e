package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"mixlattice/internal/model"
)

// RunSummary 运行历史列表项
type RunSummary struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"createdAt"`
	Degree      int     `json:"degree"`
	TotalMass   float64 `json:"totalMass"`
	Replicates  int     `json:"replicates"`
	ClosureMode string  `json:"closureMode"`
	DesignMode  string  `json:"designMode"`
	SolventName string  `json:"solventName"`
	Accepted    int     `json:"accepted"`
	Rejected    int     `json:"rejected"`
}

// RunRecord 单次运行的完整记录（参数回显 + 剔除统计）
type RunRecord struct {
	RunSummary
	Ingredients   []model.Ingredient         `json:"ingredients"`
	RejectReasons map[model.RejectReason]int `json:"rejectReasons"`
}

// SaveRun 保存一次设计运行，返回运行 ID
func (s *Store) SaveRun(result *model.DesignResult) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	runID := uuid.New().String()

	_, err = tx.Exec(`
		INSERT INTO runs (id, degree, total_mass, replicates, closure_mode, design_mode, solvent_name, accepted, rejected)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, result.Params.Degree, result.Params.TotalMass, result.Params.Replicates,
		string(result.Params.Closure), string(result.Mode), result.SolventName(),
		result.AcceptedCount(), result.RejectedCount)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i := range result.Ingredients {
		ing := &result.Ingredients[i]
		_, err = tx.Exec(`
			INSERT INTO run_ingredients (run_id, position, name, purity, max_active, density, is_solvent)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, i, ing.Name, ing.Purity, ing.MaxActive, ing.Density, ing.IsSolvent)
		if err != nil {
			return "", fmt.Errorf("failed to insert run ingredient: %w", err)
		}
	}

	for reason, count := range result.RejectReasons {
		_, err = tx.Exec(`
			INSERT INTO run_rejections (run_id, reason, count) VALUES (?, ?, ?)
		`, runID, string(reason), count)
		if err != nil {
			return "", fmt.Errorf("failed to insert run rejection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// ListRuns 按时间倒序获取运行历史
func (s *Store) ListRuns() ([]RunSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, degree, total_mass, replicates, closure_mode, design_mode, solvent_name, accepted, rejected
		FROM runs ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]RunSummary, 0)
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Degree, &r.TotalMass, &r.Replicates,
			&r.ClosureMode, &r.DesignMode, &r.SolventName, &r.Accepted, &r.Rejected); err != nil {
			return nil, err
		}
		summaries = append(summaries, r)
	}

	return summaries, rows.Err()
}

// GetRun 获取单次运行的完整记录
func (s *Store) GetRun(id string) (*RunRecord, error) {
	record := &RunRecord{
		RejectReasons: make(map[model.RejectReason]int),
	}

	err := s.db.QueryRow(`
		SELECT id, created_at, degree, total_mass, replicates, closure_mode, design_mode, solvent_name, accepted, rejected
		FROM runs WHERE id = ?
	`, id).Scan(&record.ID, &record.CreatedAt, &record.Degree, &record.TotalMass, &record.Replicates,
		&record.ClosureMode, &record.DesignMode, &record.SolventName, &record.Accepted, &record.Rejected)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run not found: %s", id)
		}
		return nil, err
	}

	ingRows, err := s.db.Query(`
		SELECT name, purity, max_active, density, is_solvent
		FROM run_ingredients WHERE run_id = ? ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var ing model.Ingredient
		if err := ingRows.Scan(&ing.Name, &ing.Purity, &ing.MaxActive, &ing.Density, &ing.IsSolvent); err != nil {
			return nil, err
		}
		record.Ingredients = append(record.Ingredients, ing)
	}
	if err := ingRows.Err(); err != nil {
		return nil, err
	}

	rejRows, err := s.db.Query(`SELECT reason, count FROM run_rejections WHERE run_id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rejRows.Close()

	for rejRows.Next() {
		var reason string
		var count int
		if err := rejRows.Scan(&reason, &count); err != nil {
			return nil, err
		}
		record.RejectReasons[model.RejectReason(reason)] = count
	}

	return record, rejRows.Err()
}

// DeleteRun 删除一次运行及其关联数据
func (s *Store) DeleteRun(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("run not found: %s", id)
	}

	if _, err := tx.Exec(`DELETE FROM run_ingredients WHERE run_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM run_rejections WHERE run_id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}

// CountRuns 运行历史总数
func (s *Store) CountRuns() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count)
	return count, err
}
