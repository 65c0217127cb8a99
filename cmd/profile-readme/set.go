package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"profile-readme/internal/display"
	"profile-readme/internal/profile"
)

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// flagUpdates turns --enable/--disable names into updates. Disable wins when
// a name appears in both.
func flagUpdates(enable, disable []string) ([]profile.Update, error) {
	var updates []profile.Update
	for _, group := range []struct {
		names []string
		on    bool
	}{{enable, true}, {disable, false}} {
		for _, name := range group.names {
			f, err := profile.ParseFlag(name)
			if err != nil {
				return nil, fmt.Errorf("%w (known: %s)", err, knownFlags())
			}
			updates = append(updates, profile.SetFlag(f, group.on))
		}
	}
	return updates, nil
}

func knownFlags() string {
	names := make([]string, len(profile.AllFlags))
	for i, f := range profile.AllFlags {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func normalizeColor(c string) (string, error) {
	c = strings.TrimSpace(c)
	if !hexColor.MatchString(c) {
		return "", fmt.Errorf("invalid color %q (want #rrggbb)", c)
	}
	return "#" + strings.ToLower(strings.TrimPrefix(c, "#")), nil
}

// parseSocials reads platform=url pairs.
func parseSocials(pairs []string) ([]profile.Social, error) {
	out := make([]profile.Social, 0, len(pairs))
	for _, pair := range pairs {
		platform, url, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(platform) == "" || strings.TrimSpace(url) == "" {
			return nil, fmt.Errorf("invalid social %q (want platform=url)", pair)
		}
		out = append(out, profile.Social{Platform: strings.TrimSpace(platform), URL: strings.TrimSpace(url)})
	}
	return out, nil
}

func newSetCommand(a *app) *cobra.Command {
	var (
		addSkills, removeSkills []string
		enable, disable         []string
		socials                 []string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Edit fields of the stored profile",
		Long: `Edit the stored profile. Only the flags you pass change; everything else is kept.

Section flags for --enable and --disable: ` + knownFlags(),
		Example: `  profile-readme set --name "Ada Lovelace" --title "Engineer" --github ada
  profile-readme set --add-skill Go --add-skill Rust --enable showRepos
  profile-readme set --columns 3 --card-style compact --primary "#ff6600"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := a.loadProfile()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			str := func(name, fallback string) string {
				if flags.Changed(name) {
					v, _ := flags.GetString(name)
					return v
				}
				return fallback
			}

			var updates []profile.Update

			updates = append(updates, profile.SetIdentity(profile.Identity{
				Name:     str("name", current.Name),
				Title:    str("title", current.Title),
				About:    str("about", current.About),
				Location: str("location", current.Location),
				Company:  str("company", current.Company),
				Website:  str("website", current.Website),
			}))
			updates = append(updates, profile.SetSocials(
				str("github", current.GitHub),
				str("twitter", current.Twitter),
				str("linkedin", current.LinkedIn),
			))
			if flags.Changed("avatar") {
				avatar := str("avatar", "")
				updates = append(updates, func(p *profile.ProfileData) { p.AvatarURL = avatar })
			}

			colors := current.Colors
			for name, dst := range map[string]*string{
				"primary":   &colors.Primary,
				"secondary": &colors.Secondary,
				"accent":    &colors.Accent,
			} {
				if !flags.Changed(name) {
					continue
				}
				if *dst, err = normalizeColor(str(name, "")); err != nil {
					return err
				}
			}
			updates = append(updates, profile.SetColors(colors))

			for _, s := range addSkills {
				updates = append(updates, profile.AddSkill(s))
			}
			for _, s := range removeSkills {
				updates = append(updates, profile.RemoveSkill(s))
			}

			fu, err := flagUpdates(enable, disable)
			if err != nil {
				return err
			}
			updates = append(updates, fu...)

			rs := current.RepoSettings
			rs.CardStyle = str("card-style", rs.CardStyle)
			rs.Alignment = str("alignment", rs.Alignment)
			rs.Theme = str("repo-theme", rs.Theme)
			rs.BorderStyle = str("border", rs.BorderStyle)
			if flags.Changed("columns") {
				rs.GridColumns, _ = flags.GetInt("columns")
			}
			if flags.Changed("show-owner") {
				rs.ShowOwner, _ = flags.GetBool("show-owner")
			}
			if flags.Changed("show-description") {
				rs.ShowDescription, _ = flags.GetBool("show-description")
			}
			switch rs.CardStyle {
			case profile.CardStyleDefault, profile.CardStyleCompact, profile.CardStyleDetailed, profile.CardStyleMinimal:
			default:
				return fmt.Errorf("invalid card style %q (want default, compact, detailed or minimal)", rs.CardStyle)
			}
			updates = append(updates, profile.SetRepoSettings(rs))

			contact := current.ContactInfo
			contact.Email = str("email", contact.Email)
			contact.Location = str("contact-location", contact.Location)
			if flags.Changed("social") {
				if contact.Socials, err = parseSocials(socials); err != nil {
					return err
				}
			}
			updates = append(updates, profile.SetContact(contact))

			next := current.Apply(updates...)
			if err := a.store().Save(next); err != nil {
				return err
			}
			a.logger.Info("profile updated", zap.String("path", a.cfg.ProfilePath), zap.Int("skills", len(next.Skills)))
			display.DisplaySuccess(fmt.Sprintf("Profile saved to %s", a.cfg.ProfilePath))
			return nil
		},
	}

	f := cmd.Flags()
	f.String("name", "", "display name")
	f.String("title", "", "headline, e.g. \"Backend Engineer\"")
	f.String("about", "", "short bio")
	f.String("location", "", "location")
	f.String("company", "", "company")
	f.String("website", "", "personal website URL")
	f.String("avatar", "", "avatar image URL")
	f.String("github", "", "GitHub handle or profile URL")
	f.String("twitter", "", "Twitter/X handle or profile URL")
	f.String("linkedin", "", "LinkedIn handle or profile URL")
	f.String("primary", "", "primary color, #rrggbb")
	f.String("secondary", "", "secondary color, #rrggbb")
	f.String("accent", "", "accent color, #rrggbb")
	f.StringArrayVar(&addSkills, "add-skill", nil, "add a skill (repeatable)")
	f.StringArrayVar(&removeSkills, "remove-skill", nil, "remove a skill (repeatable)")
	f.StringSliceVar(&enable, "enable", nil, "turn sections on")
	f.StringSliceVar(&disable, "disable", nil, "turn sections off")
	f.String("card-style", "", "repository card style: default, compact, detailed, minimal")
	f.Int("columns", 0, "repository card grid columns")
	f.String("alignment", "", "repository card alignment: left, center, right")
	f.String("repo-theme", "", "repository card theme")
	f.String("border", "", "repository card border: default, none or a color")
	f.Bool("show-owner", false, "show the owner on repository cards")
	f.Bool("show-description", true, "show descriptions on repository cards")
	f.String("email", "", "contact email")
	f.String("contact-location", "", "contact location")
	f.StringArrayVar(&socials, "social", nil, "contact link as platform=url (repeatable, replaces existing)")
	return cmd
}
