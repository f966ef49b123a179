// Package httpclient - тонкая объектная обертка над net/http для одного
// синхронного запроса. Опции задаются явной структурой или через
// фиксированную таблицу имен; неизвестное имя опции отклоняется сразу,
// а не при отправке.
package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"modelkit/pkg/apperrors"
)

// BasicAuth - пара логин/пароль для базовой аутентификации.
type BasicAuth struct {
	Username string
	Password string
}

// Options - полный набор поддерживаемых опций запроса.
// Нулевое значение означает GET без таймаута со следованием редиректам,
// одинаково для New и NewWithOptions.
type Options struct {
	Method           string
	Header           http.Header
	Body             io.Reader
	Timeout          time.Duration
	DisableRedirects bool
	UserAgent        string
	BasicAuth        *BasicAuth
}

// Request владеет одним запросом и его ответом. Таймаут не навязывается:
// если опция не задана, запрос блокируется до ответа транспорта.
// Close должен быть вызван владельцем ровно один раз.
type Request struct {
	url     string
	opts    Options
	client  *http.Client
	resp    *http.Response
	elapsed time.Duration
	closed  bool
}

// New создает запрос на указанный URL с GET-методом по умолчанию.
func New(url string) *Request {
	return &Request{
		url: url,
		opts: Options{
			Method: http.MethodGet,
			Header: http.Header{},
		},
	}
}

// NewWithOptions создает запрос с готовым набором опций.
func NewWithOptions(url string, opts Options) *Request {
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}
	if opts.Header == nil {
		opts.Header = http.Header{}
	}
	return &Request{url: url, opts: opts}
}

// optionTable - фиксированная таблица имя-опции → сеттер.
var optionTable = map[string]func(*Request, any) error{
	"method": func(r *Request, v any) error {
		s, ok := v.(string)
		if !ok {
			return invalidOption("method", "string")
		}
		r.opts.Method = strings.ToUpper(s)
		return nil
	},
	"body": func(r *Request, v any) error {
		switch b := v.(type) {
		case io.Reader:
			r.opts.Body = b
		case string:
			r.opts.Body = strings.NewReader(b)
		case []byte:
			r.opts.Body = strings.NewReader(string(b))
		default:
			return invalidOption("body", "io.Reader, string or []byte")
		}
		return nil
	},
	"timeout": func(r *Request, v any) error {
		d, ok := v.(time.Duration)
		if !ok {
			return invalidOption("timeout", "time.Duration")
		}
		r.opts.Timeout = d
		return nil
	},
	"follow_redirects": func(r *Request, v any) error {
		b, ok := v.(bool)
		if !ok {
			return invalidOption("follow_redirects", "bool")
		}
		r.opts.DisableRedirects = !b
		return nil
	},
	"user_agent": func(r *Request, v any) error {
		s, ok := v.(string)
		if !ok {
			return invalidOption("user_agent", "string")
		}
		r.opts.UserAgent = s
		return nil
	},
	"basic_auth": func(r *Request, v any) error {
		auth, ok := v.(BasicAuth)
		if !ok {
			return invalidOption("basic_auth", "httpclient.BasicAuth")
		}
		r.opts.BasicAuth = &auth
		return nil
	},
}

func invalidOption(name, expected string) error {
	return apperrors.New(apperrors.CodeInvalidOption, "httpclient",
		fmt.Sprintf("option %q expects %s", name, expected))
}

// SetOption устанавливает опцию по имени. Имена вне таблицы отклоняются
// с ошибкой CodeUnknownOption.
func (r *Request) SetOption(name string, value any) error {
	setter, ok := optionTable[name]
	if !ok {
		return apperrors.New(apperrors.CodeUnknownOption, "httpclient",
			fmt.Sprintf("unknown option %q", name))
	}
	return setter(r, value)
}

// SetHeader добавляет заголовок запроса.
func (r *Request) SetHeader(key, value string) {
	r.opts.Header.Set(key, value)
}

// Send выполняет блокирующий запрос. Ошибки транспорта возвращаются как
// есть, без интерпретации. Ответ остается у Request до Close.
func (r *Request) Send() (*http.Response, error) {
	if r.closed {
		return nil, apperrors.New(apperrors.CodeAlreadyClosed, "httpclient", "request already closed")
	}

	req, err := http.NewRequest(r.opts.Method, r.url, r.opts.Body)
	if err != nil {
		return nil, err
	}
	for key, values := range r.opts.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if r.opts.UserAgent != "" {
		req.Header.Set("User-Agent", r.opts.UserAgent)
	}
	if r.opts.BasicAuth != nil {
		req.SetBasicAuth(r.opts.BasicAuth.Username, r.opts.BasicAuth.Password)
	}

	if r.client == nil {
		r.client = &http.Client{Timeout: r.opts.Timeout}
		if r.opts.DisableRedirects {
			r.client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			}
		}
	}

	// Тело предыдущего ответа больше недостижимо, закрываем
	if r.resp != nil {
		_ = r.resp.Body.Close()
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	r.elapsed = time.Since(start)
	if err != nil {
		return nil, err
	}

	r.resp = resp
	return resp, nil
}

// Contents выполняет запрос и возвращает тело ответа строкой.
// Тело ответа вычитывается и закрывается.
func (r *Request) Contents() (string, error) {
	resp, err := r.Send()
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Info возвращает одну метрику последнего ответа по имени.
// До первого Send любая метрика - ошибка CodeNotSent.
func (r *Request) Info(name string) (any, error) {
	if r.resp == nil {
		return nil, apperrors.New(apperrors.CodeNotSent, "httpclient", "request has not been sent")
	}

	switch name {
	case "status_code":
		return r.resp.StatusCode, nil
	case "content_type":
		return r.resp.Header.Get("Content-Type"), nil
	case "content_length":
		return r.resp.ContentLength, nil
	case "effective_url":
		return r.resp.Request.URL.String(), nil
	case "total_time":
		return r.elapsed, nil
	default:
		return nil, apperrors.New(apperrors.CodeUnknownInfoKey, "httpclient",
			fmt.Sprintf("unknown info key %q", name))
	}
}

// Close освобождает ресурсы запроса. Повторный вызов - ошибка:
// время жизни обертки ограничивается вызывающей стороной явно.
func (r *Request) Close() error {
	if r.closed {
		return apperrors.New(apperrors.CodeAlreadyClosed, "httpclient", "request already closed")
	}
	r.closed = true

	if r.resp != nil {
		_ = r.resp.Body.Close()
		r.resp = nil
	}
	if r.client != nil {
		r.client.CloseIdleConnections()
	}
	return nil
}
