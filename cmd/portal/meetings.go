package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/business-portal/internal/application"
)

func newMeetingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Manage the meeting collection",
	}
	cmd.AddCommand(
		newMeetingsListCmd(a),
		newMeetingsAddCmd(a),
		newMeetingsEditCmd(a),
		newMeetingsRemoveCmd(a),
		newMeetingsStatsCmd(a),
	)
	return cmd
}

func newMeetingsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List meetings sorted by date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meetings := a.meetings.List()
			if len(meetings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no meetings")
				return nil
			}
			for _, meeting := range meetings {
				printMeeting(cmd, meeting)
			}
			return nil
		},
	}
}

func newMeetingsAddCmd(a *app) *cobra.Command {
	var input application.MeetingInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a meeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := a.meetings.Create(cmd.Context(), input)
			if err != nil {
				return reportError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "meeting title")
	cmd.Flags().StringVar(&input.Date, "date", "", "meeting date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.Time, "time", "", "meeting time (HH:MM)")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "free-form notes")
	cmd.Flags().StringSliceVar(&input.Rooms, "room", nil, "requested room (repeatable)")
	cmd.Flags().StringSliceVar(&input.Equipment, "equipment", nil, "requested equipment (repeatable)")
	return cmd
}

func newMeetingsEditCmd(a *app) *cobra.Command {
	var input application.MeetingInput

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			// Unchanged flags keep their current values.
			current, found := findMeeting(a.meetings.List(), id)
			if !found {
				return reportError(cmd, application.ErrNotFound)
			}
			if !cmd.Flags().Changed("title") {
				input.Title = current.Title
			}
			if !cmd.Flags().Changed("date") {
				input.Date = current.Date
			}
			if !cmd.Flags().Changed("time") {
				input.Time = current.Time
			}
			if !cmd.Flags().Changed("notes") {
				input.Notes = current.Notes
			}
			if !cmd.Flags().Changed("room") {
				input.Rooms = current.Rooms
			}
			if !cmd.Flags().Changed("equipment") {
				input.Equipment = current.Equipment
			}

			updated, err := a.meetings.Update(cmd.Context(), id, input)
			if err != nil {
				return reportError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Title, "title", "", "meeting title")
	cmd.Flags().StringVar(&input.Date, "date", "", "meeting date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&input.Time, "time", "", "meeting time (HH:MM)")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "free-form notes")
	cmd.Flags().StringSliceVar(&input.Rooms, "room", nil, "requested room (repeatable)")
	cmd.Flags().StringSliceVar(&input.Equipment, "equipment", nil, "requested equipment (repeatable)")
	return cmd
}

func newMeetingsRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.meetings.Remove(cmd.Context(), args[0]); err != nil {
				return reportError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
}

func newMeetingsStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show meeting statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := a.meetings.Statistics()
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d\nthis week: %d\n", stats.Total, stats.ThisWeek)
			return nil
		},
	}
}

func printMeeting(cmd *cobra.Command, meeting application.Meeting) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s  %s", meeting.ID, meeting.Date, meeting.Time, meeting.Title)
	if meeting.Notes != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  (%s)", meeting.Notes)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}

func findMeeting(meetings []application.Meeting, id string) (application.Meeting, bool) {
	for _, meeting := range meetings {
		if meeting.ID == id {
			return meeting, true
		}
	}
	return application.Meeting{}, false
}
