package staff

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beleza-studio/internal/avatar"
	"github.com/BruksfildServices01/beleza-studio/internal/idgen"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/storage"
)

type fixture struct {
	specialists *Specialists
	schedules   *Schedules
	store       *repository.SpecialistStore
	table       *repository.ScheduleStore
}

func newFixture() fixture {
	b := storage.NewMemory()
	sps := repository.NewSpecialistStore(b, idgen.NewSpecialistIDs(), nil)
	sch := repository.NewScheduleStore(b, nil)
	return fixture{
		specialists: NewSpecialists(sps, sch, avatar.NewStore(b), nil),
		schedules:   NewSchedules(sch, sps, nil),
		store:       sps,
		table:       sch,
	}
}

func TestSpecialists_AddValidatesAndCleans(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.specialists.Add(ctx, 1, repository.NewSpecialist{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)

	sp, err := f.specialists.Add(ctx, 1, repository.NewSpecialist{
		Name:        " Bia ",
		Specialties: []string{"Maquiagem", " ", "Maquiagem", "Penteado"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bia", sp.Name)
	assert.Equal(t, []string{"Maquiagem", "Penteado"}, sp.Specialties)
}

func TestSpecialists_DeleteDropsSchedule(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.specialists.Delete(ctx, 1, "fernanda"))

	week, err := f.schedules.Week(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, week, 3)

	slots, err := f.table.SlotsFor(ctx, "fernanda", 2)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSpecialists_SetAvatar(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 40))))

	sp, err := f.specialists.SetAvatar(ctx, 1, "ana", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "/api/public/avatars/ana", sp.Avatar)

	_, err = f.specialists.SetAvatar(ctx, 1, "ghost", buf.Bytes())
	assert.ErrorIs(t, err, repository.ErrSpecialistNotFound)
}

func TestSchedules_WeekAndToggle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	week, err := f.schedules.Week(ctx, "marina")
	require.NoError(t, err)
	require.Len(t, week, 1)
	require.Len(t, week[0].Days, 7)
	assert.Equal(t, "Domingo", week[0].Days[0].DayName)
	assert.Empty(t, week[0].Days[0].Slots)

	row, err := f.schedules.Toggle(ctx, 1, "marina", 0, "09:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, row.Slots)

	row, err = f.schedules.Replace(ctx, 1, "marina", 0, []string{"08:00", "12:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "12:00"}, row.Slots)

	_, err = f.schedules.Toggle(ctx, 1, "ghost", 0, "09:00")
	assert.ErrorIs(t, err, repository.ErrSpecialistNotFound)
}
