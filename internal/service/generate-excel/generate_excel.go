package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"workforce-admin/internal/constants"
	"workforce-admin/internal/service/enrich"
	"workforce-admin/internal/storage"
)

type SalaryHistory interface {
	List(ctx context.Context) ([]storage.SalaryCalculation, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]storage.SalaryCalculation, error)
}

type StatisticSource interface {
	List(ctx context.Context) ([]storage.OperatorStatistic, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]storage.OperatorStatistic, error)
}

type ShiftSource interface {
	List(ctx context.Context) ([]storage.WorkShift, error)
}

// Filter narrows a report to one employee; zero means all employees.
type Filter struct {
	EmployeeID int64
}

type GenerateExcelService struct {
	salary SalaryHistory
	stats  StatisticSource
	shifts ShiftSource
}

func NewGenerateService(salary SalaryHistory, stats StatisticSource, shifts ShiftSource) *GenerateExcelService {
	return &GenerateExcelService{salary: salary, stats: stats, shifts: shifts}
}

// SalaryExcel выгружает историю расчетов ЗП.
func (g *GenerateExcelService) SalaryExcel(ctx context.Context, filter Filter) ([]byte, error) {
	const op = "service.generate_excel.SalaryExcel"

	var (
		calcs []storage.SalaryCalculation
		err   error
	)
	if filter.EmployeeID == 0 {
		calcs, err = g.salary.List(ctx)
	} else {
		calcs, err = g.salary.ListByEmployee(ctx, filter.EmployeeID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Расчеты ЗП"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headers := []string{"ID", "Сотрудник", "Период", "Результат", "Дата расчета"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, c := range calcs {
		row := i + 2
		name := ""
		if c.Employee != nil {
			name = c.Employee.ShortName()
		}
		result, _ := c.Result.Round(2).Float64()

		f.SetCellValue(sheet, cellName(1, row), c.ID)
		f.SetCellValue(sheet, cellName(2, row), name)
		f.SetCellValue(sheet, cellName(3, row), c.PeriodLabel())
		f.SetCellValue(sheet, cellName(4, row), result)
		f.SetCellValue(sheet, cellName(5, row), c.CalculationDate.Date())
	}

	freezeHeader(f, sheet)
	f.SetColWidth(sheet, "B", "E", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

// StatisticsExcel выгружает статистику операторов со сменами.
func (g *GenerateExcelService) StatisticsExcel(ctx context.Context, filter Filter) ([]byte, error) {
	const op = "service.generate_excel.StatisticsExcel"

	var (
		stats  []storage.OperatorStatistic
		shifts []storage.WorkShift
	)

	eg, gCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if filter.EmployeeID == 0 {
			stats, err = g.stats.List(gCtx)
		} else {
			stats, err = g.stats.ListByEmployee(gCtx, filter.EmployeeID)
		}
		if err != nil {
			return fmt.Errorf("statistics: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		shifts, err = g.shifts.List(gCtx)
		if err != nil {
			return fmt.Errorf("shifts: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	rows := enrich.StatisticsWithShifts(stats, shifts)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Статистика"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	headers := []string{"ID", "Сотрудник", "Параметр", "Значение", "Дата", "Смена"}
	if err := writeHeader(f, sheet, headers); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, s := range rows {
		row := i + 2
		name := ""
		if s.Employee != nil {
			name = s.Employee.ShortName()
		}

		f.SetCellValue(sheet, cellName(1, row), s.ID)
		f.SetCellValue(sheet, cellName(2, row), name)
		f.SetCellValue(sheet, cellName(3, row), s.ParameterName)
		f.SetCellValue(sheet, cellName(4, row), s.Value)
		f.SetCellValue(sheet, cellName(5, row), s.Date.Date())
		f.SetCellValue(sheet, cellName(6, row), constants.ShiftLabel(s.WorkShift))
	}

	freezeHeader(f, sheet)
	f.SetColWidth(sheet, "B", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return err
	}

	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}

	return f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)
}

func freezeHeader(f *excelize.File, sheet string) {
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
