package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/thereayou/classlink/internal/handlers/dto"
	"github.com/thereayou/classlink/internal/models"
)

const (
	groupTag     = "group"
	directionTag = "direction"
)

// ValidationError хранит сообщение для каждого невалидного JSON поля
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = New()

// New возвращает валидатор, настроенный как gin binding после Register
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Register(v)
	return v
}

// Register включает JSON имена полей и правила сообщений
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(messagePayloadRules, dto.MessagePayload{})
}

// RegisterGin применяет Register к валидатору gin
func RegisterGin() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Struct проверяет s и возвращает *ValidationError для ошибок полей
func Struct(s interface{}) error {
	return FromError(validate.Struct(s))
}

// FromError превращает ошибки валидатора в *ValidationError, остальные отдает как есть
func FromError(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "this field is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case groupTag:
		return "group messages must target the classroom with receiverType Group"
	case directionTag:
		return "messages go from teacher to parent(s) or from parent to teacher"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}

// messagePayloadRules: isGroupMessage <=> receiverType=Group <=> receiver=classroom,
// плюс направление учитель/родитель.
func messagePayloadRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(dto.MessagePayload)
	if p.Receiver == "" || p.Classroom == "" || p.ReceiverKind == "" || p.SenderKind == "" {
		// это проверит required
		return
	}

	toGroup := p.ReceiverKind == models.KindGroup
	if p.IsGroupMessage != toGroup || toGroup != (p.Receiver == p.Classroom) {
		sl.ReportError(p.IsGroupMessage, "isGroupMessage", "IsGroupMessage", groupTag, "")
		return
	}

	switch {
	case p.SenderKind == models.KindTeacher && p.ReceiverKind != models.KindTeacher:
	case p.SenderKind == models.KindParent && p.ReceiverKind == models.KindTeacher:
	default:
		sl.ReportError(p.ReceiverKind, "receiverType", "ReceiverKind", directionTag, "")
	}
}
