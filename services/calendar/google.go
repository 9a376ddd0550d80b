package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GoogleClient implements API against the Google Calendar v3 API. Token
// refresh is handled by the oauth2 token source built from each trainer's
// stored refresh token.
type GoogleClient struct {
	oauth *oauth2.Config
}

// NewGoogleClient builds a calendar client from OAuth application credentials.
func NewGoogleClient(clientID, clientSecret, redirectURL string) *GoogleClient {
	return &GoogleClient{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{gcal.CalendarEventsScope, gcal.CalendarReadonlyScope},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL returns the consent URL for a trainer calendar grant.
func (c *GoogleClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades an authorization code for a token during the grant callback.
func (c *GoogleClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.oauth.Exchange(ctx, code)
}

func (c *GoogleClient) serviceFor(ctx context.Context, ref CalendarRef) (*gcal.Service, error) {
	if ref.RefreshToken == "" {
		return nil, fmt.Errorf("calendar %s has no authorization credential", ref.CalendarID)
	}
	ts := c.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: ref.RefreshToken})
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar service: %w", err)
	}
	return svc, nil
}

func (c *GoogleClient) FreeBusy(ctx context.Context, ref CalendarRef, from, to time.Time) ([]Interval, error) {
	svc, err := c.serviceFor(ctx, ref)
	if err != nil {
		return nil, err
	}

	req := &gcal.FreeBusyRequest{
		TimeMin: from.Format(time.RFC3339),
		TimeMax: to.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: ref.CalendarID}},
	}
	resp, err := svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("free/busy query for %s failed: %w", ref.CalendarID, err)
	}

	cal, ok := resp.Calendars[ref.CalendarID]
	if !ok {
		return nil, fmt.Errorf("free/busy response missing calendar %s", ref.CalendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("free/busy query for %s returned %s", ref.CalendarID, cal.Errors[0].Reason)
	}

	var busy []Interval
	for _, p := range cal.Busy {
		start, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid busy interval start %q: %w", p.Start, err)
		}
		end, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("invalid busy interval end %q: %w", p.End, err)
		}
		busy = append(busy, Interval{Start: start, End: end})
	}
	return busy, nil
}

func (c *GoogleClient) CreateEvent(ctx context.Context, ref CalendarRef, event EventInput) (string, error) {
	svc, err := c.serviceFor(ctx, ref)
	if err != nil {
		return "", err
	}

	ev := &gcal.Event{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
		Start:       &gcal.EventDateTime{DateTime: event.Start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: event.End.Format(time.RFC3339)},
	}
	for _, email := range event.Attendees {
		ev.Attendees = append(ev.Attendees, &gcal.EventAttendee{Email: email})
	}

	created, err := svc.Events.Insert(ref.CalendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event on %s: %w", ref.CalendarID, err)
	}
	return created.Id, nil
}

func (c *GoogleClient) DeleteEvent(ctx context.Context, ref CalendarRef, eventID string) error {
	svc, err := c.serviceFor(ctx, ref)
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(ref.CalendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event %s on %s: %w", eventID, ref.CalendarID, err)
	}
	return nil
}
