package domain

// Channel identifies a marketing distribution surface. The set of known
// channels is fixed; unknown identifiers are excluded from simulation
// rather than rejected.
type Channel string

const (
	ChannelFacebook   Channel = "facebook"
	ChannelInstagram  Channel = "instagram"
	ChannelGoogleAds  Channel = "google-ads"
	ChannelTikTok     Channel = "tiktok"
	ChannelYouTube    Channel = "youtube"
	ChannelLinkedIn   Channel = "linkedin"
	ChannelTwitter    Channel = "twitter"
	ChannelEmail      Channel = "email"
	ChannelSEO        Channel = "seo"
	ChannelInfluencer Channel = "influencer"
)

// allChannels preserves a stable ordering for deterministic iteration.
var allChannels = []Channel{
	ChannelFacebook,
	ChannelInstagram,
	ChannelGoogleAds,
	ChannelTikTok,
	ChannelYouTube,
	ChannelLinkedIn,
	ChannelTwitter,
	ChannelEmail,
	ChannelSEO,
	ChannelInfluencer,
}

// AllChannels returns every known channel in a stable order. The returned
// slice is a copy and may be modified by the caller.
func AllChannels() []Channel {
	out := make([]Channel, len(allChannels))
	copy(out, allChannels)
	return out
}

// KnownChannel reports whether ch is one of the reference channels.
func KnownChannel(ch Channel) bool {
	_, ok := channelMetrics[ch]
	return ok
}
