// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/notification"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/notificationpref"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/outboxmessage"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/payment"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/platformsetting"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/usersession"
	"github.com/Bemyself19/sehatynet_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	medicalrequestMixin := schema.MedicalRequest{}.Mixin()
	medicalrequestMixinFields0 := medicalrequestMixin[0].Fields()
	_ = medicalrequestMixinFields0
	medicalrequestMixinFields1 := medicalrequestMixin[1].Fields()
	_ = medicalrequestMixinFields1
	medicalrequestFields := schema.MedicalRequest{}.Fields()
	_ = medicalrequestFields
	// medicalrequestDescCreatedAt is the schema descriptor for created_at field.
	medicalrequestDescCreatedAt := medicalrequestMixinFields1[0].Descriptor()
	// medicalrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalrequest.DefaultCreatedAt = medicalrequestDescCreatedAt.Default.(func() time.Time)
	// medicalrequestDescUpdatedAt is the schema descriptor for updated_at field.
	medicalrequestDescUpdatedAt := medicalrequestMixinFields1[1].Descriptor()
	// medicalrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicalrequest.DefaultUpdatedAt = medicalrequestDescUpdatedAt.Default.(func() time.Time)
	// medicalrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicalrequest.UpdateDefaultUpdatedAt = medicalrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicalrequestDescTitle is the schema descriptor for title field.
	medicalrequestDescTitle := medicalrequestFields[5].Descriptor()
	// medicalrequest.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	medicalrequest.TitleValidator = medicalrequestDescTitle.Validators[0].(func(string) error)
	// medicalrequestDescResultFileKey is the schema descriptor for result_file_key field.
	medicalrequestDescResultFileKey := medicalrequestFields[9].Descriptor()
	// medicalrequest.ResultFileKeyValidator is a validator for the "result_file_key" field. It is called by the builders before save.
	medicalrequest.ResultFileKeyValidator = medicalrequestDescResultFileKey.Validators[0].(func(string) error)
	// medicalrequestDescResultFileName is the schema descriptor for result_file_name field.
	medicalrequestDescResultFileName := medicalrequestFields[10].Descriptor()
	// medicalrequest.ResultFileNameValidator is a validator for the "result_file_name" field. It is called by the builders before save.
	medicalrequest.ResultFileNameValidator = medicalrequestDescResultFileName.Validators[0].(func(string) error)
	// medicalrequestDescVersion is the schema descriptor for version field.
	medicalrequestDescVersion := medicalrequestFields[11].Descriptor()
	// medicalrequest.DefaultVersion holds the default value on creation for the version field.
	medicalrequest.DefaultVersion = medicalrequestDescVersion.Default.(int)
	// medicalrequest.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	medicalrequest.VersionValidator = medicalrequestDescVersion.Validators[0].(func(int) error)
	// medicalrequestDescID is the schema descriptor for id field.
	medicalrequestDescID := medicalrequestMixinFields0[0].Descriptor()
	// medicalrequest.DefaultID holds the default value on creation for the id field.
	medicalrequest.DefaultID = medicalrequestDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescIsPushed is the schema descriptor for is_pushed field.
	notificationDescIsPushed := notificationFields[6].Descriptor()
	// notification.DefaultIsPushed holds the default value on creation for the is_pushed field.
	notification.DefaultIsPushed = notificationDescIsPushed.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	notificationprefMixin := schema.NotificationPref{}.Mixin()
	notificationprefMixinFields0 := notificationprefMixin[0].Fields()
	_ = notificationprefMixinFields0
	notificationprefMixinFields1 := notificationprefMixin[1].Fields()
	_ = notificationprefMixinFields1
	notificationprefFields := schema.NotificationPref{}.Fields()
	_ = notificationprefFields
	// notificationprefDescCreatedAt is the schema descriptor for created_at field.
	notificationprefDescCreatedAt := notificationprefMixinFields1[0].Descriptor()
	// notificationpref.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationpref.DefaultCreatedAt = notificationprefDescCreatedAt.Default.(func() time.Time)
	// notificationprefDescUpdatedAt is the schema descriptor for updated_at field.
	notificationprefDescUpdatedAt := notificationprefMixinFields1[1].Descriptor()
	// notificationpref.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notificationpref.DefaultUpdatedAt = notificationprefDescUpdatedAt.Default.(func() time.Time)
	// notificationpref.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notificationpref.UpdateDefaultUpdatedAt = notificationprefDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationprefDescRequestSms is the schema descriptor for request_sms field.
	notificationprefDescRequestSms := notificationprefFields[1].Descriptor()
	// notificationpref.DefaultRequestSms holds the default value on creation for the request_sms field.
	notificationpref.DefaultRequestSms = notificationprefDescRequestSms.Default.(bool)
	// notificationprefDescRequestEmail is the schema descriptor for request_email field.
	notificationprefDescRequestEmail := notificationprefFields[2].Descriptor()
	// notificationpref.DefaultRequestEmail holds the default value on creation for the request_email field.
	notificationpref.DefaultRequestEmail = notificationprefDescRequestEmail.Default.(bool)
	// notificationprefDescRequestPush is the schema descriptor for request_push field.
	notificationprefDescRequestPush := notificationprefFields[3].Descriptor()
	// notificationpref.DefaultRequestPush holds the default value on creation for the request_push field.
	notificationpref.DefaultRequestPush = notificationprefDescRequestPush.Default.(bool)
	// notificationprefDescID is the schema descriptor for id field.
	notificationprefDescID := notificationprefMixinFields0[0].Descriptor()
	// notificationpref.DefaultID holds the default value on creation for the id field.
	notificationpref.DefaultID = notificationprefDescID.Default.(func() uuid.UUID)
	outboxmessageMixin := schema.OutboxMessage{}.Mixin()
	outboxmessageMixinFields0 := outboxmessageMixin[0].Fields()
	_ = outboxmessageMixinFields0
	outboxmessageMixinFields1 := outboxmessageMixin[1].Fields()
	_ = outboxmessageMixinFields1
	outboxmessageFields := schema.OutboxMessage{}.Fields()
	_ = outboxmessageFields
	// outboxmessageDescCreatedAt is the schema descriptor for created_at field.
	outboxmessageDescCreatedAt := outboxmessageMixinFields1[0].Descriptor()
	// outboxmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	outboxmessage.DefaultCreatedAt = outboxmessageDescCreatedAt.Default.(func() time.Time)
	// outboxmessageDescEventType is the schema descriptor for event_type field.
	outboxmessageDescEventType := outboxmessageFields[0].Descriptor()
	// outboxmessage.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	outboxmessage.EventTypeValidator = func() func(string) error {
		validators := outboxmessageDescEventType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(event_type string) error {
			for _, fn := range fns {
				if err := fn(event_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// outboxmessageDescSubject is the schema descriptor for subject field.
	outboxmessageDescSubject := outboxmessageFields[1].Descriptor()
	// outboxmessage.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	outboxmessage.SubjectValidator = func() func(string) error {
		validators := outboxmessageDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// outboxmessageDescDispatched is the schema descriptor for dispatched field.
	outboxmessageDescDispatched := outboxmessageFields[4].Descriptor()
	// outboxmessage.DefaultDispatched holds the default value on creation for the dispatched field.
	outboxmessage.DefaultDispatched = outboxmessageDescDispatched.Default.(bool)
	// outboxmessageDescAttempts is the schema descriptor for attempts field.
	outboxmessageDescAttempts := outboxmessageFields[6].Descriptor()
	// outboxmessage.DefaultAttempts holds the default value on creation for the attempts field.
	outboxmessage.DefaultAttempts = outboxmessageDescAttempts.Default.(int)
	// outboxmessage.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	outboxmessage.AttemptsValidator = outboxmessageDescAttempts.Validators[0].(func(int) error)
	// outboxmessageDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	outboxmessageDescNextAttemptAt := outboxmessageFields[7].Descriptor()
	// outboxmessage.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	outboxmessage.DefaultNextAttemptAt = outboxmessageDescNextAttemptAt.Default.(func() time.Time)
	// outboxmessageDescID is the schema descriptor for id field.
	outboxmessageDescID := outboxmessageMixinFields0[0].Descriptor()
	// outboxmessage.DefaultID holds the default value on creation for the id field.
	outboxmessage.DefaultID = outboxmessageDescID.Default.(func() uuid.UUID)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentMixinFields1 := paymentMixin[1].Fields()
	_ = paymentMixinFields1
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields1[0].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescAmount is the schema descriptor for amount field.
	paymentDescAmount := paymentFields[2].Descriptor()
	// payment.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	payment.AmountValidator = paymentDescAmount.Validators[0].(func(int64) error)
	// paymentDescReference is the schema descriptor for reference field.
	paymentDescReference := paymentFields[4].Descriptor()
	// payment.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	payment.ReferenceValidator = func() func(string) error {
		validators := paymentDescReference.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(reference string) error {
			for _, fn := range fns {
				if err := fn(reference); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// paymentDescDescription is the schema descriptor for description field.
	paymentDescDescription := paymentFields[5].Descriptor()
	// payment.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	payment.DescriptionValidator = paymentDescDescription.Validators[0].(func(string) error)
	// paymentDescID is the schema descriptor for id field.
	paymentDescID := paymentMixinFields0[0].Descriptor()
	// payment.DefaultID holds the default value on creation for the id field.
	payment.DefaultID = paymentDescID.Default.(func() uuid.UUID)
	platformsettingMixin := schema.PlatformSetting{}.Mixin()
	platformsettingMixinFields0 := platformsettingMixin[0].Fields()
	_ = platformsettingMixinFields0
	platformsettingMixinFields1 := platformsettingMixin[1].Fields()
	_ = platformsettingMixinFields1
	platformsettingFields := schema.PlatformSetting{}.Fields()
	_ = platformsettingFields
	// platformsettingDescCreatedAt is the schema descriptor for created_at field.
	platformsettingDescCreatedAt := platformsettingMixinFields1[0].Descriptor()
	// platformsetting.DefaultCreatedAt holds the default value on creation for the created_at field.
	platformsetting.DefaultCreatedAt = platformsettingDescCreatedAt.Default.(func() time.Time)
	// platformsettingDescUpdatedAt is the schema descriptor for updated_at field.
	platformsettingDescUpdatedAt := platformsettingMixinFields1[1].Descriptor()
	// platformsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	platformsetting.DefaultUpdatedAt = platformsettingDescUpdatedAt.Default.(func() time.Time)
	// platformsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	platformsetting.UpdateDefaultUpdatedAt = platformsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// platformsettingDescKey is the schema descriptor for key field.
	platformsettingDescKey := platformsettingFields[0].Descriptor()
	// platformsetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	platformsetting.KeyValidator = func() func(string) error {
		validators := platformsettingDescKey.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(key string) error {
			for _, fn := range fns {
				if err := fn(key); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// platformsettingDescValue is the schema descriptor for value field.
	platformsettingDescValue := platformsettingFields[1].Descriptor()
	// platformsetting.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	platformsetting.ValueValidator = platformsettingDescValue.Validators[0].(func(string) error)
	// platformsettingDescID is the schema descriptor for id field.
	platformsettingDescID := platformsettingMixinFields0[0].Descriptor()
	// platformsetting.DefaultID holds the default value on creation for the id field.
	platformsetting.DefaultID = platformsettingDescID.Default.(func() uuid.UUID)
	requestitemMixin := schema.RequestItem{}.Mixin()
	requestitemMixinFields0 := requestitemMixin[0].Fields()
	_ = requestitemMixinFields0
	requestitemMixinFields1 := requestitemMixin[1].Fields()
	_ = requestitemMixinFields1
	requestitemFields := schema.RequestItem{}.Fields()
	_ = requestitemFields
	// requestitemDescCreatedAt is the schema descriptor for created_at field.
	requestitemDescCreatedAt := requestitemMixinFields1[0].Descriptor()
	// requestitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	requestitem.DefaultCreatedAt = requestitemDescCreatedAt.Default.(func() time.Time)
	// requestitemDescUpdatedAt is the schema descriptor for updated_at field.
	requestitemDescUpdatedAt := requestitemMixinFields1[1].Descriptor()
	// requestitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	requestitem.DefaultUpdatedAt = requestitemDescUpdatedAt.Default.(func() time.Time)
	// requestitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	requestitem.UpdateDefaultUpdatedAt = requestitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requestitemDescName is the schema descriptor for name field.
	requestitemDescName := requestitemFields[1].Descriptor()
	// requestitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	requestitem.NameValidator = func() func(string) error {
		validators := requestitemDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// requestitemDescDosage is the schema descriptor for dosage field.
	requestitemDescDosage := requestitemFields[2].Descriptor()
	// requestitem.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	requestitem.DosageValidator = requestitemDescDosage.Validators[0].(func(string) error)
	// requestitemDescFrequency is the schema descriptor for frequency field.
	requestitemDescFrequency := requestitemFields[3].Descriptor()
	// requestitem.FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	requestitem.FrequencyValidator = requestitemDescFrequency.Validators[0].(func(string) error)
	// requestitemDescDuration is the schema descriptor for duration field.
	requestitemDescDuration := requestitemFields[4].Descriptor()
	// requestitem.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	requestitem.DurationValidator = requestitemDescDuration.Validators[0].(func(string) error)
	// requestitemDescAvailable is the schema descriptor for available field.
	requestitemDescAvailable := requestitemFields[6].Descriptor()
	// requestitem.DefaultAvailable holds the default value on creation for the available field.
	requestitem.DefaultAvailable = requestitemDescAvailable.Default.(bool)
	// requestitemDescPosition is the schema descriptor for position field.
	requestitemDescPosition := requestitemFields[8].Descriptor()
	// requestitem.DefaultPosition holds the default value on creation for the position field.
	requestitem.DefaultPosition = requestitemDescPosition.Default.(int)
	// requestitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	requestitem.PositionValidator = requestitemDescPosition.Validators[0].(func(int) error)
	// requestitemDescID is the schema descriptor for id field.
	requestitemDescID := requestitemMixinFields0[0].Descriptor()
	// requestitem.DefaultID holds the default value on creation for the id field.
	requestitem.DefaultID = requestitemDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescSpecialty is the schema descriptor for specialty field.
	userDescSpecialty := userFields[7].Descriptor()
	// user.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	user.SpecialtyValidator = userDescSpecialty.Validators[0].(func(string) error)
	// userDescNationalIDHash is the schema descriptor for national_id_hash field.
	userDescNationalIDHash := userFields[9].Descriptor()
	// user.NationalIDHashValidator is a validator for the "national_id_hash" field. It is called by the builders before save.
	user.NationalIDHashValidator = userDescNationalIDHash.Validators[0].(func(string) error)
	// userDescPhoneVerified is the schema descriptor for phone_verified field.
	userDescPhoneVerified := userFields[11].Descriptor()
	// user.DefaultPhoneVerified holds the default value on creation for the phone_verified field.
	user.DefaultPhoneVerified = userDescPhoneVerified.Default.(bool)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[12].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[14].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescMetadata is the schema descriptor for metadata field.
	userDescMetadata := userFields[17].Descriptor()
	// user.DefaultMetadata holds the default value on creation for the metadata field.
	user.DefaultMetadata = userDescMetadata.Default.(map[string]interface{})
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
