package attachments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
)

// steppingClock выдает монотонно растущие метки времени
type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("ATT-%04d", g.n)
}

type fakeActivityLog struct {
	added []string
}

func (l *fakeActivityLog) LogAttachmentAdded(_ context.Context, _ string, fileName string) {
	l.added = append(l.added, fileName)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeActivityLog) {
	activity := &fakeActivityLog{}
	clock := &steppingClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	return NewServiceWithClock(memory.NewStore(), activity, nopLogger{}, clock, &seqIDGenerator{}), activity
}

func TestAdd_StoresMetadataAndLogsEvent(t *testing.T) {
	svc, activity := newTestService()
	ctx := context.Background()

	attachment := svc.Add(ctx, "REQ-2025-0001", FileMeta{
		FileName:   "floorplan.pdf",
		FileType:   "application/pdf",
		FileSizeKb: 420,
		Note:       ptr.Ptr("ground floor"),
	})

	assert.Equal(t, "ATT-0001", attachment.ID)
	assert.Equal(t, "REQ-2025-0001", attachment.RequestID)
	assert.Equal(t, "floorplan.pdf", attachment.FileName)
	assert.False(t, attachment.UploadedAt.IsZero())

	assert.Equal(t, []string{"floorplan.pdf"}, activity.added)
}

func TestGetForRequest_NewestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	svc.Add(ctx, "REQ-2025-0001", FileMeta{FileName: "first.jpg"})
	svc.Add(ctx, "REQ-2025-0001", FileMeta{FileName: "second.jpg"})
	svc.Add(ctx, "REQ-2025-0002", FileMeta{FileName: "other.jpg"})

	items := svc.GetForRequest(ctx, "REQ-2025-0001")
	require.Len(t, items, 2)
	assert.Equal(t, "second.jpg", items[0].FileName)
	assert.Equal(t, "first.jpg", items[1].FileName)
}

func TestCount(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	assert.Equal(t, 0, svc.Count(ctx, "REQ-2025-0001"))

	svc.Add(ctx, "REQ-2025-0001", FileMeta{FileName: "a.jpg"})
	svc.Add(ctx, "REQ-2025-0001", FileMeta{FileName: "b.jpg"})

	assert.Equal(t, 2, svc.Count(ctx, "REQ-2025-0001"))
}

func TestRemove(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	kept := svc.Add(ctx, "REQ-2025-0001", FileMeta{FileName: "keep.jpg"})
	removed := svc.Add(ctx, "REQ-2025-0001", FileMeta{FileName: "remove.jpg"})

	svc.Remove(ctx, "REQ-2025-0001", removed.ID)

	items := svc.GetForRequest(ctx, "REQ-2025-0001")
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)

	// Чужой requestId не удаляет вложение
	svc.Remove(ctx, "REQ-2025-0002", kept.ID)
	assert.Equal(t, 1, svc.Count(ctx, "REQ-2025-0001"))
}
