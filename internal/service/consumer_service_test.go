package service

import (
	"context"
	"testing"
	"time"

	"hongling-sanctuary-be/internal/dto"
	"hongling-sanctuary-be/internal/repository/memory"
	"hongling-sanctuary-be/internal/repository/specification"
	"hongling-sanctuary-be/pkg/bazi"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumerPersistsNarrativeForExistingChart(t *testing.T) {
	factory := memory.NewFactory()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx := context.Background()
	chart := seedChart(t, factory, "user-1")

	consumer := NewConsumerService(pubSub, "chart.created.test", factory)
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(pubSub, "chart.created.test")
	payload, err := json.Marshal(dto.PublishChartCreatedMessage{
		ChartId: chart.Id,
		Tone:    "military",
		Narrative: bazi.NarrativeReport{
			bazi.PositionYear: {Commander: "金馬將軍", Story: "年柱故事"},
		},
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	uow := factory.NewUnitOfWork(ctx)
	assert.Eventually(t, func() bool {
		report, err := uow.NarrativeReportRepository().FindOne(ctx, specification.ByChartID{ChartID: chart.Id})
		return err == nil && report != nil
	}, 2*time.Second, 20*time.Millisecond)

	report, err := uow.NarrativeReportRepository().FindOne(ctx, specification.ByChartID{ChartID: chart.Id})
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, bazi.ToneMilitary, report.Tone)
	assert.Equal(t, "年柱故事", report.Narrative[bazi.PositionYear].Story)
}

func TestConsumerSkipsUnknownChart(t *testing.T) {
	factory := memory.NewFactory()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx := context.Background()
	consumer := NewConsumerService(pubSub, "chart.created.test", factory)
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(pubSub, "chart.created.test")
	payload, err := json.Marshal(dto.PublishChartCreatedMessage{
		ChartId: uuid.New(),
		Tone:    "default",
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	// give the consumer a moment, then confirm nothing was written
	time.Sleep(100 * time.Millisecond)
	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.NarrativeReportRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
