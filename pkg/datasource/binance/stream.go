package binance

import (
	"context"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/kaelx/tastream/pkg/types"
)

// Stream subscribes to the binance kline websocket and emits bars. Intrabar
// updates arrive with Closed=false and may repeat for the same bar; the
// closing update arrives exactly once with Closed=true, so a consumer can
// drive an indicator's provisional path on the former and commit on the
// latter.
type Stream struct {
	symbol   string
	interval types.Interval

	barCallbacks []func(bar types.Bar)
}

func NewStream(symbol string, interval types.Interval) *Stream {
	return &Stream{
		symbol:   symbol,
		interval: interval,
	}
}

func (s *Stream) OnBar(cb func(bar types.Bar)) {
	s.barCallbacks = append(s.barCallbacks, cb)
}

func (s *Stream) emitBar(bar types.Bar) {
	for _, cb := range s.barCallbacks {
		cb(bar)
	}
}

// Connect blocks, serving kline events until the context is canceled.
// Websocket drops are retried with exponential backoff.
func (s *Stream) Connect(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = time.Minute
	bo.MaxElapsedTime = 0

	operation := func() error {
		if err := s.serveOnce(ctx); err != nil {
			log.WithError(err).Warnf("binance kline stream disconnected, reconnecting")
			return err
		}
		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(bo, ctx))
}

func (s *Stream) serveOnce(ctx context.Context) error {
	handler := func(event *binance.WsKlineEvent) {
		if event == nil {
			return
		}
		s.emitBar(s.convert(event.Kline))
	}

	var serveErr = make(chan error, 1)
	errHandler := func(err error) {
		select {
		case serveErr <- err:
		default:
		}
	}

	doneC, stopC, err := binance.WsKlineServe(s.symbol, string(s.interval), handler, errHandler)
	if err != nil {
		return errors.Wrap(err, "can not subscribe to the kline stream")
	}

	log.Infof("subscribed to binance klines: %s %s", s.symbol, s.interval)

	select {
	case <-ctx.Done():
		close(stopC)
		<-doneC
		return backoff.Permanent(ctx.Err())
	case err := <-serveErr:
		return err
	case <-doneC:
		return errors.New("kline stream closed")
	}
}

func (s *Stream) convert(k binance.WsKline) types.Bar {
	return types.Bar{
		Symbol:    k.Symbol,
		StartTime: time.UnixMilli(k.StartTime),
		EndTime:   time.UnixMilli(k.EndTime),
		Interval:  types.Interval(k.Interval),
		Open:      mustFloat(k.Open),
		High:      mustFloat(k.High),
		Low:       mustFloat(k.Low),
		Close:     mustFloat(k.Close),
		Volume:    mustFloat(k.Volume),
		Closed:    k.IsFinal,
	}
}

// mustFloat never fails mid-stream: a malformed field decodes to 0 and the
// downstream indicators sanitize from there.
func mustFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.WithError(err).Warnf("can not parse kline field %q", s)
		return 0
	}
	return v
}
