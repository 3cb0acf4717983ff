package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageQuerySkip(t *testing.T) {
	require.Equal(t, int64(0), PageQuery{Page: 1, Limit: 10}.Skip())
	require.Equal(t, int64(10), PageQuery{Page: 2, Limit: 10}.Skip())
	require.Equal(t, int64(50), PageQuery{Page: 3, Limit: 25}.Skip())
}

func TestPaginateRoundsPagesUp(t *testing.T) {
	p := PageQuery{Page: 1, Limit: 10}.Paginate(35)
	require.Equal(t, int64(4), p.Pages)
	require.Equal(t, int64(35), p.Total)

	p = PageQuery{Page: 2, Limit: 10}.Paginate(30)
	require.Equal(t, int64(3), p.Pages)

	p = PageQuery{Page: 1, Limit: 10}.Paginate(0)
	require.Equal(t, int64(0), p.Pages)
}
