package http

import (
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/service"
)

// AdminHandler lists every user. Only admins may see it.
type AdminHandler struct {
	Users *service.UserService
}

type adminUserRow struct {
	Name    string
	Age     int
	Weight  string
	Height  string
	Gender  string
	Goal    string
	IsAdmin bool
	Joined  string
}

type adminView struct {
	Users      []adminUserRow
	Limit      int
	PrevOffset int
	NextOffset int
	HasPrev    bool
	HasNext    bool
}

// HandleGet renders one page of users. offset and limit come from the query
// string; bad or missing values fall back to 0 and MaxListLimit.
func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request, s *Session) {
	if _, err := service.RequireAdmin(s.Identity); err != nil {
		writePageError(w, r, err)
		return
	}

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", service.MaxListLimit)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > service.MaxListLimit {
		limit = service.MaxListLimit
	}

	users, err := h.Users.ListUsers(r.Context(), s.DB, offset, limit)
	if err != nil {
		writePageError(w, r, err)
		return
	}

	rows := lo.Map(users, func(u domain.User, _ int) adminUserRow {
		return adminUserRow{
			Name:    u.Name,
			Age:     u.Age,
			Weight:  humanize.FtoaWithDigits(u.WeightKg, 1),
			Height:  humanize.FtoaWithDigits(u.HeightCm, 1),
			Gender:  u.Gender,
			Goal:    u.Goal,
			IsAdmin: u.IsAdmin,
			Joined:  humanize.Time(u.CreatedAt),
		}
	})

	render(w, r, http.StatusOK, "admin", adminView{
		Users:      rows,
		Limit:      limit,
		PrevOffset: max(offset-limit, 0),
		NextOffset: offset + limit,
		HasPrev:    offset > 0,
		HasNext:    len(users) == limit,
	})
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
