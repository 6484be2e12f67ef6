// Attendance command: record and list attendance punches.
package main

import (
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/zylem/fieldsync/internal/query"
	"github.com/zylem/fieldsync/pkg/types"
)

var (
	flagAttendanceUser   string
	flagAttendanceType   string
	flagAttendanceRemark string
	flagAttendanceDayEnd bool
	flagAttendanceDate   string
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Record and list attendance punches",
}

var attendanceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an attendance punch for now",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		return queries.InsertAttendance(query.AttendanceRecord{
			UserID:         flagAttendanceUser,
			AttendanceType: flagAttendanceType,
			Date:           now.Format("2006-01-02"),
			Time:           now.Format("15:04:05"),
			Remark:         flagAttendanceRemark,
			DayEnd:         flagAttendanceDayEnd,
		})
	},
}

var attendanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List attendance punches for a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := flagAttendanceDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		rows := queries.AttendanceForDate(date)

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("User", "Type", "Time", "Day end", "Remark")
		for _, r := range rows {
			dayEnd := "no"
			if types.AsInt(r["IsDayEnd"]) == 1 {
				dayEnd = "yes"
			}
			table.Append([]string{
				types.AsString(r["UserId"]),
				types.AsString(r["AttendanceType"]),
				types.AsString(r["AttendanceTime"]),
				dayEnd,
				types.AsString(r["Remark"]),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	attendanceAddCmd.Flags().StringVar(&flagAttendanceUser, "user", "", "user id")
	attendanceAddCmd.Flags().StringVar(&flagAttendanceType, "type", "IN", "punch type (IN or OUT)")
	attendanceAddCmd.Flags().StringVar(&flagAttendanceRemark, "remark", "", "optional remark")
	attendanceAddCmd.Flags().BoolVar(&flagAttendanceDayEnd, "day-end", false, "mark this punch as day end")
	attendanceAddCmd.MarkFlagRequired("user")

	attendanceListCmd.Flags().StringVar(&flagAttendanceDate, "date", "", "date to list (default: today)")

	attendanceCmd.AddCommand(attendanceAddCmd)
	attendanceCmd.AddCommand(attendanceListCmd)
}
