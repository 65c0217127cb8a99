package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"profile-readme/internal/display"
	"profile-readme/internal/profile"
)

// saveWith applies updates to the stored profile and saves it. enable turns
// on the section the new entry belongs to.
func (a *app) saveWith(what string, enable profile.Flag, updates ...profile.Update) error {
	current, err := a.loadProfile()
	if err != nil {
		return err
	}
	updates = append(updates, profile.SetFlag(enable, true))
	if err := a.store().Save(current.Apply(updates...)); err != nil {
		return err
	}
	display.DisplaySuccess(fmt.Sprintf("Added %s to %s", what, a.cfg.ProfilePath))
	return nil
}

func required(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}
	return nil
}

func newAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project, blog post, timeline entry or education entry",
	}
	cmd.AddCommand(
		newAddProjectCommand(a),
		newAddBlogCommand(a),
		newAddTimelineCommand(a),
		newAddEducationCommand(a),
	)
	return cmd
}

func newAddProjectCommand(a *app) *cobra.Command {
	var pr profile.Project
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Add a featured project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required("title", pr.Title); err != nil {
				return err
			}
			return a.saveWith(fmt.Sprintf("project %q", pr.Title), profile.FlagShowProjects, profile.AddProject(pr))
		},
	}
	f := cmd.Flags()
	f.StringVar(&pr.Title, "title", "", "project title")
	f.StringVar(&pr.Description, "description", "", "one-line description")
	f.StringSliceVar(&pr.Technologies, "tech", nil, "technologies used")
	f.StringVar(&pr.Image, "image", "", "screenshot URL")
	f.StringVar(&pr.RepoURL, "repo", "", "source repository URL")
	f.StringVar(&pr.LiveURL, "live", "", "live demo URL")
	return cmd
}

func newAddBlogCommand(a *app) *cobra.Command {
	var post profile.BlogPost
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Add a blog post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.Join(required("title", post.Title), required("url", post.URL)); err != nil {
				return err
			}
			return a.saveWith(fmt.Sprintf("blog post %q", post.Title), profile.FlagShowBlog, profile.AddBlogPost(post))
		},
	}
	f := cmd.Flags()
	f.StringVar(&post.Title, "title", "", "post title")
	f.StringVar(&post.URL, "url", "", "post URL")
	f.StringVar(&post.Excerpt, "excerpt", "", "short excerpt")
	f.StringVar(&post.Date, "date", "", "publication date")
	f.StringVar(&post.ReadTime, "read-time", "", "reading time, e.g. \"5 min read\"")
	f.StringVar(&post.Image, "image", "", "cover image URL")
	f.StringSliceVar(&post.Tags, "tag", nil, "tags")
	return cmd
}

func newAddTimelineCommand(a *app) *cobra.Command {
	var entry profile.TimelineEntry
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Add a career timeline entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required("title", entry.Title); err != nil {
				return err
			}
			return a.saveWith(fmt.Sprintf("timeline entry %q", entry.Title), profile.FlagShowTimeline, profile.AddTimelineEntry(entry))
		},
	}
	f := cmd.Flags()
	f.StringVar(&entry.Title, "title", "", "role or milestone")
	f.StringVar(&entry.Organization, "organization", "", "company or organization")
	f.StringVar(&entry.Period, "period", "", "e.g. \"2021 - Present\"")
	f.StringVar(&entry.Description, "description", "", "what you did")
	f.StringSliceVar(&entry.Tags, "tag", nil, "tags")
	return cmd
}

func newAddEducationCommand(a *app) *cobra.Command {
	var ed profile.Education
	cmd := &cobra.Command{
		Use:   "education",
		Short: "Add an education entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := required("institution", ed.Institution); err != nil {
				return err
			}
			return a.saveWith(fmt.Sprintf("education at %q", ed.Institution), profile.FlagShowEducation, profile.AddEducation(ed))
		},
	}
	f := cmd.Flags()
	f.StringVar(&ed.Institution, "institution", "", "school or university")
	f.StringVar(&ed.Degree, "degree", "", "degree")
	f.StringVar(&ed.Field, "field", "", "field of study")
	f.StringVar(&ed.Location, "location", "", "location")
	f.StringVar(&ed.StartDate, "start", "", "start date")
	f.StringVar(&ed.EndDate, "end", "", "end date")
	f.StringVar(&ed.Description, "description", "", "description")
	f.StringVar(&ed.Logo, "logo", "", "logo URL")
	f.StringVar(&ed.GPA, "gpa", "", "GPA")
	f.StringArrayVar(&ed.Achievements, "achievement", nil, "achievement (repeatable)")
	return cmd
}
