package forms

import (
	"context"

	"github.com/accommotrack/client-go/internal/api"
	"github.com/accommotrack/client-go/internal/editable"
	"github.com/accommotrack/client-go/internal/models"
)

// NotificationsForm is the tenant notification-settings screen. Toggles
// have no per-field validation; the whole value is always submittable.
type NotificationsForm struct {
	*editable.Resource[models.NotificationSettings]
}

func NewNotificationsForm(client *api.Client) *NotificationsForm {
	res := editable.New(editable.Funcs[models.NotificationSettings]{
		Fetch: func(ctx context.Context) (models.NotificationSettings, error) {
			n, err := client.GetNotificationSettings(ctx)
			if err != nil {
				return models.NotificationSettings{}, err
			}
			return *n, nil
		},
		Persist: func(ctx context.Context, draft models.NotificationSettings, _ editable.Deletions) (models.NotificationSettings, error) {
			saved, err := client.UpdateNotificationSettings(ctx, draft)
			if err != nil {
				return models.NotificationSettings{}, err
			}
			return *saved, nil
		},
		Clone: models.NotificationSettings.Clone,
	})
	return &NotificationsForm{Resource: res}
}

func (f *NotificationsForm) Toggle(name string, on bool) error {
	return f.Mutate(name, func(d *models.NotificationSettings) {
		switch name {
		case "email_booking_updates":
			d.EmailBookingUpdates = on
		case "email_messages":
			d.EmailMessages = on
		case "email_promotions":
			d.EmailPromotions = on
		case "sms_booking_updates":
			d.SMSBookingUpdates = on
		case "sms_messages":
			d.SMSMessages = on
		}
	})
}
