package validate

import (
	"github.com/tensorguard/tensorguard/types/dtypes"
	"github.com/tensorguard/tensorguard/types/pixels"
	"github.com/tensorguard/tensorguard/types/shapes"
	"github.com/tensorguard/tensorguard/types/tensors"
)

// FormatHolder is any descriptor exposing a pixel format; both
// *tensors.Info and *tensors.MultiImageInfo satisfy it.
type FormatHolder interface {
	Format() pixels.Format
}

// AssertFormatInAt fails with NullReference if the descriptor is absent,
// UnknownFormat if its format is the unknown sentinel, or
// UnsupportedFormat if the format matches none of the allowed ones.
func AssertFormatInAt(at Location, holder FormatHolder, allowed ...pixels.Format) {
	if !Enabled {
		return
	}
	errorOn(isNil(holder), NullReference, at)
	format := holder.Format()
	errorOn(format == pixels.Unknown, UnknownFormat, at)
	errorOnMsg(!oneOf(format, allowed), UnsupportedFormat, at,
		"format %s not supported by this kernel", format)
}

// AssertFormatIn is AssertFormatInAt reporting the caller as the call
// site.
func AssertFormatIn(holder FormatHolder, allowed ...pixels.Format) {
	if !Enabled {
		return
	}
	AssertFormatInAt(locationAt(2), holder, allowed...)
}

// AssertDataTypeInAt fails with NullReference if the tensor is absent,
// UnknownDataType if its data type is the unknown sentinel, or
// UnsupportedDataType if the data type matches none of the allowed ones.
func AssertDataTypeInAt(at Location, t tensors.Tensor, allowed ...dtypes.DataType) {
	if !Enabled {
		return
	}
	errorOn(nilTensor(t), NullReference, at)
	dt := t.Info().DataType()
	errorOn(dt == dtypes.Unknown, UnknownDataType, at)
	errorOnMsg(!oneOf(dt, allowed), UnsupportedDataType, at,
		"data type %s not supported by this kernel", dt)
}

// AssertDataTypeIn is AssertDataTypeInAt reporting the caller as the call
// site.
func AssertDataTypeIn(t tensors.Tensor, allowed ...dtypes.DataType) {
	if !Enabled {
		return
	}
	AssertDataTypeInAt(locationAt(2), t, allowed...)
}

// AssertDataTypeChannelInAt composes AssertDataTypeInAt with an
// exact-match requirement on the channel count, failing with
// ChannelCountMismatch when the count differs.
func AssertDataTypeChannelInAt(at Location, t tensors.Tensor, numChannels int, allowed ...dtypes.DataType) {
	if !Enabled {
		return
	}
	AssertDataTypeInAt(at, t, allowed...)
	actual := t.Info().NumChannels()
	errorOnMsg(actual != numChannels, ChannelCountMismatch, at,
		"number of channels %d, required %d", actual, numChannels)
}

// AssertDataTypeChannelIn is AssertDataTypeChannelInAt reporting the
// caller as the call site.
func AssertDataTypeChannelIn(t tensors.Tensor, numChannels int, allowed ...dtypes.DataType) {
	if !Enabled {
		return
	}
	AssertDataTypeChannelInAt(locationAt(2), t, numChannels, allowed...)
}

// AssertTensor2DAt fails with NullReference if the tensor is absent, or
// RankMismatch if its logical rank (highest axis with extent > 1)
// exceeds two.
func AssertTensor2DAt(at Location, t tensors.Tensor) {
	if !Enabled {
		return
	}
	errorOn(nilTensor(t), NullReference, at)
	rank := shapes.Rank(t.Info().Shape())
	errorOnMsg(rank > 2, RankMismatch, at,
		"only 2D tensors are supported, got rank %d", rank)
}

// AssertTensor2D is AssertTensor2DAt reporting the caller as the call
// site.
func AssertTensor2D(t tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertTensor2DAt(locationAt(2), t)
}

// AssertChannelInAt fails with UnknownChannel if the channel is the
// unknown sentinel, or UnsupportedChannel if it matches none of the
// allowed ones.
func AssertChannelInAt(at Location, channel pixels.Channel, allowed ...pixels.Channel) {
	if !Enabled {
		return
	}
	errorOn(channel == pixels.ChannelUnknown, UnknownChannel, at)
	errorOn(!oneOf(channel, allowed), UnsupportedChannel, at)
}

// AssertChannelIn is AssertChannelInAt reporting the caller as the call
// site.
func AssertChannelIn(channel pixels.Channel, allowed ...pixels.Channel) {
	if !Enabled {
		return
	}
	AssertChannelInAt(locationAt(2), channel, allowed...)
}

// AssertChannelInFormatAt fails with UnsupportedChannel unless the
// channel is a member of the fixed channel set of the given format (the
// format→channel table in the pixels package).
func AssertChannelInFormatAt(at Location, format pixels.Format, channel pixels.Channel) {
	if !Enabled {
		return
	}
	valid := pixels.ChannelsOf(format)
	errorOnMsg(len(valid) == 0, UnsupportedChannel, at,
		"format %s carries no named channels", format)
	errorOnMsg(!oneOf(channel, valid), UnsupportedChannel, at,
		"channel %s not valid for format %s", channel, format)
}

// AssertChannelInFormat is AssertChannelInFormatAt reporting the caller
// as the call site.
func AssertChannelInFormat(format pixels.Format, channel pixels.Channel) {
	if !Enabled {
		return
	}
	AssertChannelInFormatAt(locationAt(2), format, channel)
}
